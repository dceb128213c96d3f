package excelhandler

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fakeBackend serves one canned workbook and records which paths reached it.
type fakeBackend struct {
	book      *fakeBook
	opened    []string
	openErr   error
	createErr error
}

func (b *fakeBackend) Open(path string) (Workbook, error) {
	b.opened = append(b.opened, path)
	if b.openErr != nil {
		return nil, b.openErr
	}
	if b.book == nil {
		return nil, fmt.Errorf("no canned workbook")
	}
	return b.book, nil
}

func (b *fakeBackend) Create() (Workbook, error) {
	if b.createErr != nil {
		return nil, b.createErr
	}
	book := &fakeBook{sheets: []*fakeSheet{newFakeSheet("Sheet1", nil)}}
	b.book = book
	return book, nil
}

type fakeBook struct {
	sheets  []*fakeSheet
	saves   int
	savedAs []string
	closes  int
}

func (bk *fakeBook) SheetCount() int { return len(bk.sheets) }

func (bk *fakeBook) Sheet(i int) (Sheet, error) {
	if i < 1 || i > len(bk.sheets) {
		return nil, fmt.Errorf("no sheet at index %d", i)
	}
	return bk.sheets[i-1], nil
}

func (bk *fakeBook) Save() error { bk.saves++; return nil }

func (bk *fakeBook) SaveAs(path string) error {
	bk.savedAs = append(bk.savedAs, path)
	return nil
}

func (bk *fakeBook) Close() error { bk.closes++; return nil }

// fakeSheet stores cells sparsely and counts the backend calls the session
// makes against it.
type fakeSheet struct {
	name       string
	cells      map[Position]string
	cellCalls  int
	rangeCalls int
	rangeErr   error
}

func newFakeSheet(name string, rows [][]string) *fakeSheet {
	s := &fakeSheet{name: name, cells: map[Position]string{}}
	for r, row := range rows {
		for c, v := range row {
			if v != "" {
				s.cells[Position{Row: r + 1, Col: c + 1}] = v
			}
		}
	}
	return s
}

func (s *fakeSheet) Name() string { return s.name }

func (s *fakeSheet) Cell(row, col int) (string, error) {
	s.cellCalls++
	return s.cells[Position{Row: row, Col: col}], nil
}

func (s *fakeSheet) SetCell(row, col int, value interface{}) error {
	s.cells[Position{Row: row, Col: col}] = fmt.Sprint(value)
	return nil
}

func (s *fakeSheet) Range(r1, c1, r2, c2 int) ([][]string, error) {
	s.rangeCalls++
	if s.rangeErr != nil {
		return nil, s.rangeErr
	}
	out := make([][]string, 0, r2-r1+1)
	for r := r1; r <= r2; r++ {
		row := make([]string, 0, c2-c1+1)
		for c := c1; c <= c2; c++ {
			row = append(row, s.cells[Position{Row: r, Col: c}])
		}
		out = append(out, row)
	}
	return out, nil
}

// openFake returns a session bound to a sheet holding rows, plus the fakes
// behind it.
func openFake(t *testing.T, rows [][]string) (*Handler, *fakeBackend, *fakeSheet) {
	t.Helper()
	sheet := newFakeSheet("Data", rows)
	book := &fakeBook{sheets: []*fakeSheet{sheet}}
	b := &fakeBackend{book: book}
	h := New(b, DefaultOptions())
	if err := h.Open(tempFile(t), "Data"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return h, b, sheet
}

// tempFile creates a real empty file, since Open checks the path exists
// before asking the backend.
func tempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
