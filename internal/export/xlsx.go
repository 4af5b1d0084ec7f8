// Package export renders ledger views as XLSX workbooks.
package export

import (
	"fmt"
	"time"

	"github.com/osteria-purchase-ledger/internal/domain/purchase"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is used when no sheet name is configured
const DefaultSheetName = "Purchases"

var headers = []interface{}{
	"Date",
	"Period",
	"Product",
	"Supplier",
	"Quantity",
	"Unit",
	"Total Price",
	"Unit Price",
}

// XLSXRenderer writes entries to a single-sheet workbook
type XLSXRenderer struct {
	sheet string
}

func NewXLSXRenderer(sheet string) *XLSXRenderer {
	if sheet == "" {
		sheet = DefaultSheetName
	}
	return &XLSXRenderer{sheet: sheet}
}

// Render returns the workbook bytes, one row per entry in the given order
func (r *XLSXRenderer) Render(entries []purchase.Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), r.sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(r.sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			e.Date().Format(time.DateOnly),
			e.PeriodKey(),
			e.Product(),
			e.Supplier(),
			e.Quantity(),
			string(e.Unit()),
			e.TotalPrice(),
			e.UnitPrice(),
		}
		if err := f.SetSheetRow(r.sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(r.sheet, "A", "B", 12) // date, period
	_ = f.SetColWidth(r.sheet, "C", "D", 28) // product, supplier
	_ = f.SetColWidth(r.sheet, "E", "H", 14) // figures

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
