package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "C1", "Header3")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "C2", true)
	f.SetCellValue(sheetName, "A3", "Text")
	f.SetCellValue(sheetName, "C3", false)
	f.SetCellValue(sheetName, "A5", "after blank")

	// Save to temp file
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and extract
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(rows) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(rows))
	}

	// Check header row
	if rows[0][0] != models.StringCell("Header1") {
		t.Errorf("Expected 'Header1', got %+v", rows[0][0])
	}

	// Check numeric values
	if rows[1][0] != models.NumberCell(100) {
		t.Errorf("Expected number 100, got %+v", rows[1][0])
	}
	if rows[1][1] != models.NumberCell(200.5) {
		t.Errorf("Expected number 200.5, got %+v", rows[1][1])
	}

	// Check booleans
	if rows[1][2] != models.BoolCell(true) {
		t.Errorf("Expected bool true, got %+v", rows[1][2])
	}
	if rows[2][2] != models.BoolCell(false) {
		t.Errorf("Expected bool false, got %+v", rows[2][2])
	}

	// Gap inside a row is an empty cell
	if rows[2][1] != models.EmptyCell() {
		t.Errorf("Expected empty cell, got %+v", rows[2][1])
	}

	// Blank row is kept as a zero-length row
	if len(rows[3]) != 0 {
		t.Errorf("Expected blank row, got %+v", rows[3])
	}
}

func TestToCell(t *testing.T) {
	tests := []struct {
		cellType excelize.CellType
		raw      string
		expected models.Cell
	}{
		{excelize.CellTypeBool, "1", models.BoolCell(true)},
		{excelize.CellTypeBool, "0", models.BoolCell(false)},
		{excelize.CellTypeBool, "TRUE", models.BoolCell(true)},
		{excelize.CellTypeBool, "garbage", models.BoolCell(false)},
		{excelize.CellTypeNumber, "1.5", models.NumberCell(1.5)},
		{excelize.CellTypeNumber, "x", models.NumberCell(0)},
		{excelize.CellTypeUnset, "42", models.NumberCell(42)},
		{excelize.CellTypeUnset, "abc", models.StringCell("abc")},
		{excelize.CellTypeSharedString, "123", models.StringCell("123")},
		{excelize.CellTypeInlineString, "inline", models.StringCell("inline")},
		{excelize.CellTypeFormula, "result", models.StringCell("result")},
		{excelize.CellTypeError, "#DIV/0!", models.StringCell("#DIV/0!")},
		{excelize.CellTypeDate, "2024-01-02T00:00:00Z", models.StringCell("2024-01-02T00:00:00Z")},
	}

	for _, tt := range tests {
		result := toCell(tt.cellType, tt.raw)
		if result != tt.expected {
			t.Errorf("toCell(%v, %q) = %+v, expected %+v", tt.cellType, tt.raw, result, tt.expected)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Cell
	}{
		{"123", models.NumberCell(123)},
		{"123.45", models.NumberCell(123.45)},
		{"-100", models.NumberCell(-100)},
		{"1e3", models.NumberCell(1000)},
		{"hello", models.StringCell("hello")},
		{"", models.EmptyCell()},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestTrimRow(t *testing.T) {
	row := models.Row{models.StringCell("a"), models.EmptyCell(), models.NumberCell(1), models.EmptyCell(), models.EmptyCell()}
	assert.Equal(t, row[:3], trimRow(row))
	assert.Empty(t, trimRow(models.Row{models.EmptyCell()}))
}

func TestTrimRows(t *testing.T) {
	rows := []models.Row{{models.StringCell("a")}, nil, {models.NumberCell(2)}, nil, {}}
	assert.Len(t, trimRows(rows), 3)
	assert.Empty(t, trimRows([]models.Row{nil, nil}))
}

func TestOpenFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Data"))
	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Data", "A1", "first"))
	require.NoError(t, f.SetCellValue("Other", "A1", "second"))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()
	assert.Equal(t, FormatXLSX, wb.Format())

	sheet, err := wb.FirstSheet()
	require.NoError(t, err)
	assert.Equal(t, "Data", sheet.Name)
	require.Equal(t, 1, sheet.Len())
	assert.Equal(t, models.Row{models.StringCell("first")}, sheet.Rows[0])
}

func TestFirstSheetClipsToUsedRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "C2", &[]interface{}{"id", "name"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "C3", &[]interface{}{1}))
	require.NoError(t, f.SetCellValue("Sheet1", "D5", "last"))

	path := filepath.Join(t.TempDir(), "offset.xlsx")
	require.NoError(t, f.SaveAs(path))

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	sheet, err := wb.FirstSheet()
	require.NoError(t, err)
	assert.Equal(t, "C2:D5", sheet.UsedRange)

	e := models.EmptyCell()
	assert.Equal(t, []models.Row{
		{models.StringCell("id"), models.StringCell("name")},
		{models.NumberCell(1), e},
		{e, e},
		{e, models.StringCell("last")},
	}, sheet.Rows)
}

func TestOpenEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.SaveAs(path))

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	sheet, err := wb.FirstSheet()
	require.NoError(t, err)
	assert.Equal(t, 0, sheet.Len())
	assert.Empty(t, sheet.UsedRange)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.xlsx"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	text := filepath.Join(dir, "notes.xlsx")
	require.NoError(t, os.WriteFile(text, []byte("just some text"), 0644))
	_, err = Open(text)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	short := filepath.Join(dir, "short.xlsx")
	require.NoError(t, os.WriteFile(short, []byte("PK"), 0644))
	_, err = Open(short)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	brokenZip := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, os.WriteFile(brokenZip, []byte("PK\x03\x04 not really a zip archive"), 0644))
	_, err = Open(brokenZip)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDetectFormat(t *testing.T) {
	dir := t.TempDir()

	ole := filepath.Join(dir, "legacy.bin")
	require.NoError(t, os.WriteFile(ole, append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, 0, 0), 0644))
	format, err := DetectFormat(ole)
	require.NoError(t, err)
	assert.Equal(t, FormatXLS, format)

	zip := filepath.Join(dir, "archive.bin")
	require.NoError(t, os.WriteFile(zip, []byte("PK\x03\x04rest"), 0644))
	format, err = DetectFormat(zip)
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, format)
}
