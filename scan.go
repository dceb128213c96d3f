package excelhandler

import "github.com/pkg/errors"

// Extent discovery. Sheets carry no reliable row or column count, so the
// populated extent is measured the way a user would eyeball it: walk from
// the top-left corner until the first empty cell. The scans assume a dense
// header row and a dense first column; holes there end the count early.

// ColumnCount probes row 1 cell by cell and returns how many leading cells
// are populated. The probe stops at Options.MaxScanCols and returns the cap
// when even that cell is populated.
func (h *Handler) ColumnCount() (int, error) {
	return h.scan(h.opts.MaxScanCols, func(i int) (string, error) {
		return h.sheet.Cell(1, i)
	})
}

// RowCount probes column 1 cell by cell and returns how many leading cells
// are populated. The probe stops at Options.MaxScanRows and returns the cap
// when even that cell is populated.
func (h *Handler) RowCount() (int, error) {
	return h.scan(h.opts.MaxScanRows, func(i int) (string, error) {
		return h.sheet.Cell(i, 1)
	})
}

func (h *Handler) scan(limit int, cell func(int) (string, error)) (int, error) {
	if h.closed {
		return 0, ErrClosed
	}
	if h.sheet == nil {
		return 0, errors.Wrap(ErrInvalidRegion, "no sheet bound")
	}
	count := 0
	for count < limit {
		v, err := cell(count + 1)
		if err != nil {
			return 0, err
		}
		if v == "" {
			break
		}
		count++
	}
	return count, nil
}
