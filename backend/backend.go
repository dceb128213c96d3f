// Package backend supplies the spreadsheet engines a Handler runs on:
// xlsx through excelize, legacy xls read-only through extrame/xls, and
// delimited text files presented as single-sheet workbooks.
package backend

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
)

var (
	// ErrReadOnly marks engines that cannot write their format back out.
	ErrReadOnly = errors.New("backend is read-only")
	// ErrUnknownFormat is returned by ForPath when no engine claims the
	// file extension.
	ErrUnknownFormat = errors.New("unknown spreadsheet format")
)

//
// ForPath picks the engine for path by its extension
//
func ForPath(path string) (excelhandler.Backend, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return XLSX{}, nil
	case ".xls":
		return XLS{}, nil
	case ".csv", ".txt":
		return CSV{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%s", path)
}
