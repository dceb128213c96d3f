package backend

import (
	"io"

	"github.com/extrame/xls"
	"github.com/pkg/errors"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
)

// XLS reads legacy .xls workbooks through extrame/xls. The library only
// parses the BIFF format, so creating, updating and saving fail with
// ErrReadOnly.
type XLS struct {
	// Charset names the text encoding of the workbook strings, "utf-8"
	// when empty.
	Charset string
}

func (b XLS) Open(path string) (excelhandler.Workbook, error) {
	charset := b.Charset
	if charset == "" {
		charset = "utf-8"
	}
	wb, closer, err := xls.OpenWithCloser(path, charset)
	if err != nil {
		return nil, errors.Wrapf(err, "opening workbook %s", path)
	}
	return &xlsBook{book: wb, closer: closer}, nil
}

func (XLS) Create() (excelhandler.Workbook, error) {
	return nil, errors.Wrap(ErrReadOnly, "cannot create an xls workbook")
}

type xlsBook struct {
	book   *xls.WorkBook
	closer io.Closer
}

func (b *xlsBook) SheetCount() int {
	return b.book.NumSheets()
}

func (b *xlsBook) Sheet(i int) (excelhandler.Sheet, error) {
	ws := b.book.GetSheet(i - 1)
	if ws == nil {
		return nil, errors.Errorf("workbook has no sheet at index %d", i)
	}
	return &xlsSheet{sheet: ws}, nil
}

func (b *xlsBook) Save() error {
	return errors.Wrap(ErrReadOnly, "cannot save an xls workbook")
}

func (b *xlsBook) SaveAs(string) error {
	return errors.Wrap(ErrReadOnly, "cannot save an xls workbook")
}

// Close releases the file handle the lazy BIFF parser reads from.
func (b *xlsBook) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

type xlsSheet struct {
	sheet *xls.WorkSheet
}

func (s *xlsSheet) Name() string {
	return s.sheet.Name
}

func (s *xlsSheet) Cell(row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", errors.Errorf("cell (%d,%d) outside the grid", row, col)
	}
	if row-1 > int(s.sheet.MaxRow) {
		return "", nil
	}
	r := s.sheet.Row(row - 1)
	if r == nil {
		return "", nil
	}
	return r.Col(col - 1), nil
}

func (s *xlsSheet) SetCell(int, int, interface{}) error {
	return errors.Wrap(ErrReadOnly, "cannot update an xls cell")
}

func (s *xlsSheet) Range(r1, c1, r2, c2 int) ([][]string, error) {
	out := make([][]string, 0, r2-r1+1)
	for r := r1; r <= r2; r++ {
		row := make([]string, 0, c2-c1+1)
		for c := c1; c <= c2; c++ {
			v, err := s.Cell(r, c)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		out = append(out, row)
	}
	return out, nil
}
