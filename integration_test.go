package excelhandler_test

import (
	"path/filepath"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
	"github.com/sina-karimi-93/microsoft-excel-handler/backend"
)

// writePeopleFixture builds a small workbook on disk: a people sheet plus a
// second sheet to make the binding choices observable.
func writePeopleFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Age")
	f.SetCellValue("Sheet1", "A2", "Alice")
	f.SetCellValue("Sheet1", "B2", 30)
	f.SetCellValue("Sheet1", "A3", "Bob")
	f.SetCellValue("Sheet1", "B3", 41)
	f.NewSheet("Extra")
	f.SetCellValue("Extra", "A1", "x")

	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSX_FetchRecords(t *testing.T) {
	path := writePeopleFixture(t)

	h := excelhandler.New(backend.XLSX{}, excelhandler.DefaultOptions())
	require.NoError(t, h.Open(path))
	defer h.Close()

	cols, err := h.ColumnCount()
	require.NoError(t, err)
	rows, err := h.RowCount()
	require.NoError(t, err)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 3, rows)

	recs, err := h.FetchRecords()
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, recs.Headers())

	var got []excelhandler.Record
	for recs.Next() {
		got = append(got, recs.Record())
	}
	require.NoError(t, recs.Err())

	want := []excelhandler.Record{
		{"Name": "Alice", "Age": "30"},
		{"Name": "Bob", "Age": "41"},
	}
	assert.Equal(t, want, got)
}

func TestXLSX_UpdateAndSaveAs(t *testing.T) {
	path := writePeopleFixture(t)
	out := filepath.Join(filepath.Dir(path), "edited.xlsx")

	err := excelhandler.With(backend.XLSX{}, path, "", func(h *excelhandler.Handler) error {
		if err := h.UpdateCell(excelhandler.Position{Row: 2, Col: 2}, 31); err != nil {
			return err
		}
		return h.SaveAs(out)
	})
	require.NoError(t, err)

	// reopen the copy and check the edit took
	h := excelhandler.New(backend.XLSX{}, excelhandler.DefaultOptions())
	require.NoError(t, h.Open(out, "Sheet1"))
	defer h.Close()

	rows, err := h.FetchRange(excelhandler.Position{Row: 2, Col: 1}, excelhandler.Position{Row: 2, Col: 2})
	require.NoError(t, err)
	require.True(t, rows.Next())
	assert.Equal(t, []string{"Alice", "31"}, rows.Values())
	require.NoError(t, rows.Err())
}

func TestXLSX_BindNamedSheet(t *testing.T) {
	path := writePeopleFixture(t)

	h := excelhandler.New(backend.XLSX{}, excelhandler.DefaultOptions())
	require.NoError(t, h.Open(path, "Extra"))
	defer h.Close()
	assert.Equal(t, "Extra", h.SheetName())

	// a failed rebind keeps the session on the current sheet
	err := h.SetSheet("Missing")
	assert.Equal(t, excelhandler.ErrSheetNotFound, errors.Cause(err))
	assert.Equal(t, "Extra", h.SheetName())
}

func TestXLSX_CreateNew(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fresh.xlsx")

	h := excelhandler.New(backend.XLSX{}, excelhandler.DefaultOptions())
	require.NoError(t, h.CreateNew())
	require.NoError(t, h.UpdateCell(excelhandler.Position{Row: 1, Col: 1}, "seed"))
	require.NoError(t, h.SaveAs(out))
	require.NoError(t, h.Close())

	err := excelhandler.With(backend.XLSX{}, out, "", func(h *excelhandler.Handler) error {
		rows, err := h.FetchAll()
		if err != nil {
			return err
		}
		require.True(t, rows.Next())
		assert.Equal(t, []string{"seed"}, rows.Values())
		return rows.Err()
	})
	require.NoError(t, err)
}
