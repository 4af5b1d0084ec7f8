// Package ledger provides the append-only, in-memory collection of purchase
// entries owned by one session.
package ledger

import (
	"sync"

	"github.com/osteria-purchase-ledger/internal/domain/purchase"
)

// Ledger is an ordered, append-only sequence of purchase entries.
// Append is the only mutator; reads hand out copies.
type Ledger struct {
	mu      sync.RWMutex
	entries []purchase.Entry
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{}
}

// Append adds the entry at the end of the ledger and returns the new size
func (l *Ledger) Append(entry purchase.Entry) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	return len(l.entries)
}

// All returns every entry in append order
func (l *Ledger) All() []purchase.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]purchase.Entry(nil), l.entries...)
}

// Latest returns the last n entries in append order.
// n <= 0 yields an empty slice; n larger than the ledger yields everything.
func (l *Ledger) Latest(n int) []purchase.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 {
		return []purchase.Entry{}
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return append([]purchase.Entry(nil), l.entries[len(l.entries)-n:]...)
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

// IsEmpty reports whether nothing has been appended yet
func (l *Ledger) IsEmpty() bool {
	return l.Len() == 0
}
