package export

import (
	"context"
	"log/slog"

	"github.com/osteria-purchase-ledger/internal/domain/purchase"
	"github.com/panjf2000/ants/v2"
)

// Renderer turns a sequence of entries into a document
type Renderer interface {
	Render(entries []purchase.Entry) ([]byte, error)
}

type result struct {
	data []byte
	err  error
}

// Pool bounds how many exports render at once
type Pool struct {
	renderer Renderer
	pool     *ants.Pool
	logger   *slog.Logger
}

type PoolConfig struct {
	Size int
}

func NewPool(renderer Renderer, config PoolConfig, logger *slog.Logger) (*Pool, error) {
	pool, err := ants.NewPool(config.Size)
	if err != nil {
		return nil, err
	}

	return &Pool{
		renderer: renderer,
		pool:     pool,
		logger:   logger,
	}, nil
}

// Export renders the entries on a pool worker and waits for the result
// or for the context to be canceled
func (p *Pool) Export(ctx context.Context, entries []purchase.Entry) ([]byte, error) {
	// Buffered so a worker finishing after cancellation never blocks
	resultChan := make(chan result, 1)

	err := p.pool.Submit(func() {
		data, err := p.renderer.Render(entries)
		resultChan <- result{data: data, err: err}
	})
	if err != nil {
		p.logger.Error("Failed to submit export to worker pool", "rows", len(entries), "error", err)
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.err != nil {
			p.logger.Error("Export rendering failed", "rows", len(entries), "error", res.err)
			return nil, res.err
		}
		p.logger.Info("Export rendered", "rows", len(entries), "bytes", len(res.data))
		return res.data, nil
	}
}

// Shutdown releases the worker pool
func (p *Pool) Shutdown() {
	p.logger.Info("Shutting down export pool", "running_workers", p.pool.Running())
	p.pool.Release()
}

// Running returns the number of running workers in the pool
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Capacity returns the capacity of the worker pool
func (p *Pool) Capacity() int {
	return p.pool.Cap()
}
