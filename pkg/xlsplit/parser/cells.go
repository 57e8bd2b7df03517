package parser

import (
	"strconv"

	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts typed rows from a sheet.
// Blank rows are kept as zero-length rows so row positions match the source.
func ExtractCells(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.Row, 0, len(rows))
	for rowIdx, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				cells[colIdx] = models.EmptyCell()
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = toCell(cellType, cellValue)
		}
		result = append(result, trimRow(cells))
	}

	return result, nil
}

// toCell maps a raw cell value to a typed cell using the stored cell type.
func toCell(cellType excelize.CellType, raw string) models.Cell {
	switch cellType {
	case excelize.CellTypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return models.BoolCell(false)
		}
		return models.BoolCell(b)
	case excelize.CellTypeNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.NumberCell(0)
		}
		return models.NumberCell(f)
	case excelize.CellTypeUnset:
		// Cells without a type attribute are numeric in OOXML.
		return parseValue(raw)
	default:
		// Shared and inline strings, formula string results, errors and ISO dates.
		return models.StringCell(raw)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns an empty cell for "", a number cell for integers and decimals,
// or a string cell holding the original text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.EmptyCell()
	}
	// Integers are widened to float64
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.NumberCell(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.NumberCell(f)
	}
	return models.StringCell(s)
}

// trimRow drops trailing empty cells.
func trimRow(row models.Row) models.Row {
	n := len(row)
	for n > 0 && row[n-1].IsEmpty() {
		n--
	}
	return row[:n]
}

// trimRows drops trailing rows without cells.
func trimRows(rows []models.Row) []models.Row {
	n := len(rows)
	for n > 0 && len(rows[n-1]) == 0 {
		n--
	}
	return rows[:n]
}
