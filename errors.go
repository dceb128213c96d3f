package excelhandler

import "errors"

var (
	// ErrFileNotFound means the workbook path does not exist. The check runs
	// before the backend is contacted.
	ErrFileNotFound = errors.New("excel file not found")
	// ErrSheetNotFound means no sheet in the workbook matches the requested
	// name.
	ErrSheetNotFound = errors.New("sheet not found in the workbook")
	// ErrInvalidRegion means a requested cell region is degenerate or there
	// is no sheet bound to read it from.
	ErrInvalidRegion = errors.New("invalid cell region")
	// ErrNoWorkbook means the operation needs an open workbook.
	ErrNoWorkbook = errors.New("no workbook is open")
	// ErrClosed means the handler has been closed and cannot be reused.
	ErrClosed = errors.New("handler is closed")
)
