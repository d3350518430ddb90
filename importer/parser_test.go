package importer

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes the given rows (first row is the header) into an
// in-memory xlsx workbook.
func buildWorkbook(t *testing.T, rows [][]string) io.Reader {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, name, cell); err != nil {
				t.Fatal(err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestParseWorkbook(t *testing.T) {
	rows, err := ParseWorkbook(buildWorkbook(t, [][]string{
		{ColFullName, ColEmail, ColDistance},
		{"Nguyễn Văn A", "a@example.com", "10KM"},
		{"Trần Thị B", "b@example.com", "21KM"},
	}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Number != 2 || rows[1].Number != 3 {
		t.Errorf("display numbering is off: %d, %d", rows[0].Number, rows[1].Number)
	}
	if rows[0].Cells[ColFullName] != "Nguyễn Văn A" {
		t.Errorf("wrong cell: %q", rows[0].Cells[ColFullName])
	}
	if rows[1].Cells[ColDistance] != "21KM" {
		t.Errorf("wrong cell: %q", rows[1].Cells[ColDistance])
	}
}

func TestParseWorkbookTrimsCells(t *testing.T) {
	rows, err := ParseWorkbook(buildWorkbook(t, [][]string{
		{" " + ColFullName + " ", ColDistance},
		{"  Nguyễn Văn A  ", " 10KM "},
	}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rows[0].Cells[ColFullName] != "Nguyễn Văn A" {
		t.Errorf("cell not trimmed: %q", rows[0].Cells[ColFullName])
	}
	if rows[0].Cells[ColDistance] != "10KM" {
		t.Errorf("header not trimmed: %+v", rows[0].Cells)
	}
}

func TestParseWorkbookSkipsBlankRowsKeepsNumbering(t *testing.T) {
	rows, err := ParseWorkbook(buildWorkbook(t, [][]string{
		{ColFullName, ColDistance},
		{"Nguyễn Văn A", "10KM"},
		{"", ""},
		{"Trần Thị B", "21KM"},
	}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Number != 4 {
		t.Errorf("blank rows must not shift display numbers, got %d", rows[1].Number)
	}
}

func TestParseWorkbookMissingCellsAreEmpty(t *testing.T) {
	rows, err := ParseWorkbook(buildWorkbook(t, [][]string{
		{ColFullName, ColEmail, ColDistance},
		{"Nguyễn Văn A"}, // short row
	}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v, ok := rows[0].Cells[ColDistance]; !ok || v != "" {
		t.Errorf("short rows should map missing cells to %q, got %q (present=%v)", "", v, ok)
	}
}

func TestParseWorkbookHeaderOnly(t *testing.T) {
	rows, err := ParseWorkbook(buildWorkbook(t, [][]string{
		{ColFullName, ColDistance},
	}))
	if err != nil {
		t.Fatalf("header-only file is an empty batch, not an error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestParseWorkbookMalformed(t *testing.T) {
	_, err := ParseWorkbook(bytes.NewReader([]byte("this is not a spreadsheet")))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrMalformedFile) {
		t.Errorf("expected ErrMalformedFile, got %v", err)
	}
}

func TestParseWorkbookCSVRejected(t *testing.T) {
	csv := strings.Join([]string{
		ColFullName + "," + ColDistance,
		"Nguyễn Văn A,10KM",
	}, "\n")
	_, err := ParseWorkbook(strings.NewReader(csv))
	if !errors.Is(err, ErrMalformedFile) {
		t.Errorf("csv bytes are not an xlsx workbook, got %v", err)
	}
}
