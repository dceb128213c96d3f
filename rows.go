package excelhandler

import "github.com/pkg/errors"

// Position addresses one cell. Row and Col are 1-based, so the top-left
// cell of a sheet is Position{1, 1}.
type Position struct {
	Row int
	Col int
}

// Rows streams a rectangular sheet region row by row, top to bottom. It
// follows the database/sql iteration shape:
//
//	rows, err := h.FetchAll()
//	if err != nil {
//		return err
//	}
//	for rows.Next() {
//		use(rows.Values())
//	}
//	return rows.Err()
//
// Every served row has exactly the width of the region, padded with the
// empty-cell sentinel where the backend had nothing stored.
type Rows struct {
	sheet Sheet
	start Position
	end   Position
	eager bool       // region was read in one backend call
	buf   [][]string // the eager payload
	next  int        // row offsets already served
	row   []string
	err   error
}

// FetchRange reads the region between start and end inclusive with a single
// backend call and returns an iterator over its rows. The region must not
// reach above or left of (1,1) and end must not precede start; otherwise it
// fails with ErrInvalidRegion.
func (h *Handler) FetchRange(start, end Position) (*Rows, error) {
	if h.closed {
		return nil, ErrClosed
	}
	if err := checkRegion(h.sheet, start, end); err != nil {
		return nil, err
	}
	buf, err := h.sheet.Range(start.Row, start.Col, end.Row, end.Col)
	if err != nil {
		return nil, err
	}
	h.log.Trace("fetched rows %d-%d in one call", start.Row, end.Row)
	return &Rows{sheet: h.sheet, start: start, end: end, eager: true, buf: buf}, nil
}

// FetchAll streams the populated extent of the bound sheet, anchored at
// (1,1). Called with no arguments it measures the extent with ColumnCount
// and RowCount first; called with exactly two arguments they are taken as
// the row and column counts and the scans are skipped. Any other number of
// arguments fails with ErrInvalidRegion: the counts describe one region and
// only make sense together.
//
// Unlike FetchRange, rows are read from the backend one at a time, when the
// iterator reaches them.
func (h *Handler) FetchAll(counts ...int) (*Rows, error) {
	if h.closed {
		return nil, ErrClosed
	}
	var nrows, ncols int
	switch len(counts) {
	case 0:
		var err error
		if ncols, err = h.ColumnCount(); err != nil {
			return nil, err
		}
		if nrows, err = h.RowCount(); err != nil {
			return nil, err
		}
	case 2:
		nrows, ncols = counts[0], counts[1]
	default:
		return nil, errors.Wrap(ErrInvalidRegion, "row and column counts only make sense together")
	}
	h.log.Debug("sheet extent: %d row(s), %d column(s)", nrows, ncols)
	if nrows < 1 || ncols < 1 {
		return &Rows{}, nil
	}
	end := Position{Row: nrows, Col: ncols}
	if err := checkRegion(h.sheet, Position{Row: 1, Col: 1}, end); err != nil {
		return nil, err
	}
	return &Rows{sheet: h.sheet, start: Position{Row: 1, Col: 1}, end: end}, nil
}

// Next advances to the following row. It returns false when the region is
// exhausted or a backend read failed; Err tells the two apart.
func (r *Rows) Next() bool {
	if r.err != nil {
		return false
	}
	if r.sheet == nil && !r.eager {
		return false
	}
	if r.next >= r.height() {
		return false
	}
	if r.eager {
		var src []string
		if r.next < len(r.buf) {
			src = r.buf[r.next]
		}
		r.row = pad(src, r.width())
		r.next++
		return true
	}
	rowNum := r.start.Row + r.next
	vals, err := r.sheet.Range(rowNum, r.start.Col, rowNum, r.end.Col)
	if err != nil {
		r.err = err
		return false
	}
	var src []string
	if len(vals) > 0 {
		src = vals[0]
	}
	r.row = pad(src, r.width())
	r.next++
	return true
}

// Values returns the current row. The slice is only valid until the next
// call to Next.
func (r *Rows) Values() []string { return r.row }

// Err returns the first error hit while iterating, if any.
func (r *Rows) Err() error { return r.err }

func (r *Rows) width() int  { return r.end.Col - r.start.Col + 1 }
func (r *Rows) height() int { return r.end.Row - r.start.Row + 1 }

// checkRegion validates the fetch preconditions: a bound sheet and a region
// shaped like a rectangle inside the grid.
func checkRegion(sheet Sheet, start, end Position) error {
	if sheet == nil {
		return errors.Wrap(ErrInvalidRegion, "no sheet bound")
	}
	if start.Row < 1 || start.Col < 1 {
		return errors.Wrapf(ErrInvalidRegion, "start (%d,%d) reaches outside the grid", start.Row, start.Col)
	}
	if end.Row < start.Row || end.Col < start.Col {
		return errors.Wrapf(ErrInvalidRegion, "end (%d,%d) precedes start (%d,%d)", end.Row, end.Col, start.Row, start.Col)
	}
	return nil
}

// pad clips or extends row to width, filling missing cells with the
// empty-cell sentinel.
func pad(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
