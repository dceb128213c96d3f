package backend

import (
	"sort"
	"strconv"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
)

// XLSX drives .xlsx workbooks through excelize. The whole document lives in
// memory between Open and Save, the way excelize works.
type XLSX struct{}

func (XLSX) Open(path string) (excelhandler.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening workbook %s", path)
	}
	return &xlsxBook{xlsx: f}, nil
}

func (XLSX) Create() (excelhandler.Workbook, error) {
	return &xlsxBook{xlsx: excelize.NewFile()}, nil
}

// xlsxBook wraps one excelize file
type xlsxBook struct {
	xlsx *excelize.File
}

func (b *xlsxBook) SheetCount() int {
	return len(b.xlsx.GetSheetMap())
}

func (b *xlsxBook) Sheet(i int) (excelhandler.Sheet, error) {
	name, ok := sheetNameAt(b.xlsx, i)
	if !ok {
		return nil, errors.Errorf("workbook has no sheet at index %d", i)
	}
	return &xlsxSheet{xlsx: b.xlsx, name: name}, nil
}

func (b *xlsxBook) Save() error {
	return errors.Wrap(b.xlsx.Save(), "saving workbook")
}

func (b *xlsxBook) SaveAs(path string) error {
	return errors.Wrapf(b.xlsx.SaveAs(path), "saving workbook as %s", path)
}

// Close releases nothing: excelize keeps the document in memory and holds
// no file handle between operations.
func (b *xlsxBook) Close() error {
	return nil
}

//
// sheetNameAt maps the 1-based position i to a sheet name. GetSheetMap is
// keyed by sheet id, and ids stop being contiguous once a sheet is deleted,
// so the ids are walked in order instead of being trusted as positions.
//
func sheetNameAt(f *excelize.File, i int) (string, bool) {
	m := f.GetSheetMap()
	if i < 1 || i > len(m) {
		return "", false
	}
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return m[ids[i-1]], true
}

// xlsxSheet addresses one sheet by name
type xlsxSheet struct {
	xlsx *excelize.File
	name string
}

func (s *xlsxSheet) Name() string {
	return s.name
}

func (s *xlsxSheet) Cell(row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", errors.Errorf("cell (%d,%d) outside the grid", row, col)
	}
	return s.xlsx.GetCellValue(s.name, axis(row, col)), nil
}

func (s *xlsxSheet) SetCell(row, col int, value interface{}) error {
	if row < 1 || col < 1 {
		return errors.Errorf("cell (%d,%d) outside the grid", row, col)
	}
	s.xlsx.SetCellValue(s.name, axis(row, col), value)
	return nil
}

// Range reads cell by cell. excelize can list whole rows, but it compacts
// sparse sheets when doing so, shifting values out of their columns; the
// per-cell lookup keeps every value where the sheet stores it.
func (s *xlsxSheet) Range(r1, c1, r2, c2 int) ([][]string, error) {
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

//
// axis transforms (3, 2) into "B3"
//
func axis(row, col int) string {
	return excelize.ToAlphaString(col-1) + strconv.Itoa(row)
}
