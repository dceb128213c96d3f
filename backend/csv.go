package backend

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
)

// CSV presents a delimited text file as a workbook with a single sheet
// named after the file. The grid lives in memory; Save writes it back out
// as utf-8 regardless of the encoding it was read with.
type CSV struct {
	// Comma is the field delimiter, ',' when zero.
	Comma rune

	// Encoding names the charset the file is stored in: "utf-8" (the
	// default), "latin-1" or "windows-1252".
	Encoding string
}

func (b CSV) Open(path string) (excelhandler.Workbook, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer fh.Close()

	dec, err := decoderFor(b.Encoding)
	if err != nil {
		return nil, err
	}
	var src io.Reader = fh
	if dec != nil {
		src = transform.NewReader(fh, dec)
	}

	r := csv.NewReader(src)
	r.Comma = b.comma()
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	cells, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return &csvBook{
		name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		path:  path,
		comma: b.comma(),
		cells: cells,
	}, nil
}

func (b CSV) Create() (excelhandler.Workbook, error) {
	return &csvBook{name: "Sheet1", comma: b.comma()}, nil
}

func (b CSV) comma() rune {
	if b.Comma == 0 {
		return ','
	}
	return b.Comma
}

// decoderFor maps an encoding label to its charmap decoder. utf-8 needs no
// transform and maps to nil.
func decoderFor(label string) (transform.Transformer, error) {
	switch strings.ToLower(label) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	}
	return nil, errors.Errorf("unsupported encoding %q", label)
}

type csvBook struct {
	name  string
	path  string
	comma rune
	cells [][]string
}

func (b *csvBook) SheetCount() int {
	return 1
}

func (b *csvBook) Sheet(i int) (excelhandler.Sheet, error) {
	if i != 1 {
		return nil, errors.Errorf("workbook has no sheet at index %d", i)
	}
	return &csvSheet{book: b}, nil
}

func (b *csvBook) Save() error {
	if b.path == "" {
		return errors.New("workbook has no path, use SaveAs")
	}
	return b.SaveAs(b.path)
}

func (b *csvBook) SaveAs(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	w := csv.NewWriter(fh)
	w.Comma = b.comma
	if err := w.WriteAll(b.cells); err != nil {
		fh.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := fh.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}
	b.path = path
	return nil
}

func (b *csvBook) Close() error {
	return nil
}

type csvSheet struct {
	book *csvBook
}

func (s *csvSheet) Name() string {
	return s.book.name
}

func (s *csvSheet) Cell(row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", errors.Errorf("cell (%d,%d) outside the grid", row, col)
	}
	cells := s.book.cells
	if row > len(cells) {
		return "", nil
	}
	if col > len(cells[row-1]) {
		return "", nil
	}
	return cells[row-1][col-1], nil
}

func (s *csvSheet) SetCell(row, col int, value interface{}) error {
	if row < 1 || col < 1 {
		return errors.Errorf("cell (%d,%d) outside the grid", row, col)
	}
	b := s.book
	for len(b.cells) < row {
		b.cells = append(b.cells, nil)
	}
	r := b.cells[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = cellString(value)
	b.cells[row-1] = r
	return nil
}

func (s *csvSheet) Range(r1, c1, r2, c2 int) ([][]string, error) {
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

// cellString renders a written value the way the text grid stores it.
func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
