package excelhandler

// Backend is one spreadsheet engine. Every session operation reaches the
// file format through it, so anything honoring these contracts can drive a
// Handler. The engines for xlsx, legacy xls and csv live in the backend
// package.
type Backend interface {
	Open(path string) (Workbook, error)
	Create() (Workbook, error)
}

// Workbook is one open spreadsheet document. Sheets are addressed by
// 1-based index, matching the convention spreadsheet applications expose.
type Workbook interface {
	SheetCount() int
	Sheet(i int) (Sheet, error)
	Save() error
	SaveAs(path string) error
	Close() error
}

// Sheet is one worksheet of an open workbook. Rows and columns are 1-based
// and the empty string is the empty-cell sentinel. Range returns the
// rectangle (r1,c1)-(r2,c2) inclusive as rows of cells; implementations may
// return short or missing rows and the caller pads them.
type Sheet interface {
	Name() string
	Cell(row, col int) (string, error)
	SetCell(row, col int, value interface{}) error
	Range(r1, c1, r2, c2 int) ([][]string, error)
}
