package backend

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeCSVFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSV_Open(t *testing.T) {
	path := writeCSVFixture(t, "people.csv", []byte("Name,Age\nAlice,30\nBob,41\n"))

	book, err := CSV{}.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer book.Close()

	if got := book.SheetCount(); got != 1 {
		t.Errorf("SheetCount() = %d, want 1", got)
	}
	if _, err := book.Sheet(2); err == nil {
		t.Error("Sheet(2) expected an error")
	}

	sheet, err := book.Sheet(1)
	if err != nil {
		t.Fatal(err)
	}
	if sheet.Name() != "people" {
		t.Errorf("Name() = %q, want %q", sheet.Name(), "people")
	}

	got, err := sheet.Range(1, 1, 3, 3)
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	want := [][]string{
		{"Name", "Age", ""},
		{"Alice", "30", ""},
		{"Bob", "41", ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Range() = %v, want %v", got, want)
	}
}

func TestCSV_Delimiter(t *testing.T) {
	path := writeCSVFixture(t, "semi.csv", []byte("Name;Age\nAlice;30\n"))

	book, err := CSV{Comma: ';'}.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer book.Close()

	sheet, _ := book.Sheet(1)
	v, err := sheet.Cell(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v != "30" {
		t.Errorf("Cell(2,2) = %q, want %q", v, "30")
	}
}

func TestCSV_Latin1(t *testing.T) {
	// "café" with the é stored as latin-1 0xE9
	data := []byte{'c', 'a', 'f', 0xE9, ',', '3', '0', '\n'}
	path := writeCSVFixture(t, "latin.csv", data)

	book, err := CSV{Encoding: "latin-1"}.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer book.Close()

	sheet, _ := book.Sheet(1)
	v, err := sheet.Cell(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v != "café" {
		t.Errorf("Cell(1,1) = %q, want %q", v, "café")
	}
}

func TestCSV_UnknownEncoding(t *testing.T) {
	path := writeCSVFixture(t, "enc.csv", []byte("a\n"))

	if _, err := (CSV{Encoding: "klingon"}).Open(path); err == nil {
		t.Error("Open() expected an error for an unsupported encoding")
	}
}

func TestCSV_SetCellGrowsTheGrid(t *testing.T) {
	path := writeCSVFixture(t, "grow.csv", []byte("a\n"))

	book, err := CSV{}.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer book.Close()
	sheet, _ := book.Sheet(1)

	if err := sheet.SetCell(3, 3, 42); err != nil {
		t.Fatalf("SetCell() error = %v", err)
	}

	got, err := sheet.Range(1, 1, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"a", "", ""},
		{"", "", ""},
		{"", "", "42"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Range() after SetCell = %v, want %v", got, want)
	}
}

func TestCSV_SaveRoundTrip(t *testing.T) {
	path := writeCSVFixture(t, "edit.csv", []byte("Name,Age\nAlice,30\n"))

	book, err := CSV{}.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	sheet, _ := book.Sheet(1)
	if err := sheet.SetCell(2, 2, 31); err != nil {
		t.Fatal(err)
	}
	if err := book.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	book.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "Name,Age\nAlice,31\n" {
		t.Errorf("saved file = %q, want %q", raw, "Name,Age\nAlice,31\n")
	}
}

func TestCSV_CreateNeedsAPath(t *testing.T) {
	book, err := CSV{}.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer book.Close()

	sheet, err := book.Sheet(1)
	if err != nil {
		t.Fatal(err)
	}
	if sheet.Name() != "Sheet1" {
		t.Errorf("Name() = %q, want %q", sheet.Name(), "Sheet1")
	}
	if err := sheet.SetCell(1, 1, "x"); err != nil {
		t.Fatal(err)
	}

	// no origin path yet, so a plain Save has nowhere to go
	if err := book.Save(); err == nil {
		t.Error("Save() expected an error before SaveAs")
	}

	out := filepath.Join(t.TempDir(), "fresh.csv")
	if err := book.SaveAs(out); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	// SaveAs sets the origin, Save works from now on
	if err := book.Save(); err != nil {
		t.Errorf("Save() after SaveAs error = %v", err)
	}
}
