// Package excelhandler automates short-lived spreadsheet sessions: open a
// workbook, bind one of its sheets, measure the populated extent, stream
// rows or labeled records out of it, poke values back in and save.
//
// The package never touches a file format itself. It drives a Backend, and
// the backend package supplies engines for xlsx, legacy xls and csv.
package excelhandler

import (
	"os"

	"github.com/pkg/errors"
)

// Handler is one workbook session on top of a Backend. It remembers the
// open workbook and the sheet every cell operation applies to. A Handler
// is not safe for concurrent use.
type Handler struct {
	backend Backend
	book    Workbook
	sheet   Sheet
	opts    Options
	log     Logger
	closed  bool
}

// New returns a Handler driving b. No workbook is open yet; follow with
// Open or CreateNew.
func New(b Backend, opts Options) *Handler {
	opts = opts.withDefaults()
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}
	return &Handler{backend: b, opts: opts, log: log}
}

// Open loads the workbook stored at path and binds a sheet: the first one
// when no name is given, otherwise the first sheet matching sheetName.
// A path that does not exist fails with ErrFileNotFound before the backend
// is contacted. Opening on a handler that already holds a workbook simply
// replaces it.
func (h *Handler) Open(path string, sheetName ...string) error {
	if h.closed {
		return ErrClosed
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrFileNotFound, "open %s", path)
		}
		return errors.Wrapf(err, "stat %s", path)
	}
	h.log.Debug("opening workbook %s", path)
	book, err := h.backend.Open(path)
	if err != nil {
		return err
	}
	h.book = book
	return h.SetSheet(sheetName...)
}

// CreateNew asks the backend for a blank workbook and binds its first
// sheet. The workbook only reaches disk on Save or SaveAs.
func (h *Handler) CreateNew() error {
	if h.closed {
		return ErrClosed
	}
	h.log.Debug("creating blank workbook")
	book, err := h.backend.Create()
	if err != nil {
		return err
	}
	h.book = book
	return h.SetSheet()
}

// SetSheet rebinds the sheet the session operates on. With no name (or an
// empty one) it binds the first sheet. With a name it walks the workbook in
// index order and binds the first exact match; when nothing matches it
// fails with ErrSheetNotFound and the previous binding stays in place.
func (h *Handler) SetSheet(name ...string) error {
	if h.closed {
		return ErrClosed
	}
	if h.book == nil {
		return ErrNoWorkbook
	}
	if len(name) == 0 || name[0] == "" {
		sheet, err := h.book.Sheet(1)
		if err != nil {
			return err
		}
		h.sheet = sheet
		h.log.Trace("sheet %q bound", sheet.Name())
		return nil
	}
	sheet, err := findSheet(h.book, name[0])
	if err != nil {
		return err
	}
	h.sheet = sheet
	h.log.Trace("sheet %q bound", sheet.Name())
	return nil
}

// findSheet scans book in index order for the first sheet called name.
func findSheet(book Workbook, name string) (Sheet, error) {
	count := book.SheetCount()
	for i := 1; i <= count; i++ {
		sheet, err := book.Sheet(i)
		if err != nil {
			return nil, err
		}
		if sheet.Name() == name {
			return sheet, nil
		}
	}
	return nil, errors.Wrapf(ErrSheetNotFound, "sheet %q", name)
}

// SheetName returns the name of the bound sheet, or "" when none is bound.
func (h *Handler) SheetName() string {
	if h.sheet == nil {
		return ""
	}
	return h.sheet.Name()
}

// SheetNames returns every sheet name of the open workbook in index order.
func (h *Handler) SheetNames() ([]string, error) {
	if h.closed {
		return nil, ErrClosed
	}
	if h.book == nil {
		return nil, ErrNoWorkbook
	}
	count := h.book.SheetCount()
	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		sheet, err := h.book.Sheet(i)
		if err != nil {
			return nil, err
		}
		names = append(names, sheet.Name())
	}
	return names, nil
}

// UpdateCell writes value into the cell at pos on the bound sheet. The
// change lives in the workbook only until Save or SaveAs persists it.
func (h *Handler) UpdateCell(pos Position, value interface{}) error {
	if h.closed {
		return ErrClosed
	}
	if h.book == nil || h.sheet == nil {
		return ErrNoWorkbook
	}
	h.log.Trace("cell (%d,%d) <- %v", pos.Row, pos.Col, value)
	return h.sheet.SetCell(pos.Row, pos.Col, value)
}

// Save persists the workbook to where it came from.
func (h *Handler) Save() error {
	if h.closed {
		return ErrClosed
	}
	if h.book == nil {
		return ErrNoWorkbook
	}
	h.log.Debug("saving workbook")
	return h.book.Save()
}

// SaveAs persists the workbook to path.
func (h *Handler) SaveAs(path string) error {
	if h.closed {
		return ErrClosed
	}
	if h.book == nil {
		return ErrNoWorkbook
	}
	h.log.Debug("saving workbook as %s", path)
	return h.book.SaveAs(path)
}

// Close releases the workbook and retires the handler. Closing twice is a
// no-op; every other operation on a closed handler fails with ErrClosed.
// Changes not saved are lost.
func (h *Handler) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	if h.book == nil {
		return nil
	}
	book := h.book
	h.book, h.sheet = nil, nil
	return book.Close()
}

// With opens the workbook at path on b, binds sheetName (empty means the
// first sheet), hands the session to fn and closes it again on every exit
// path.
func With(b Backend, path, sheetName string, fn func(*Handler) error) error {
	h := New(b, DefaultOptions())
	defer h.Close()
	if err := h.Open(path, sheetName); err != nil {
		return err
	}
	return fn(h)
}
