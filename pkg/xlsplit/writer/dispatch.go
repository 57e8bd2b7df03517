package writer

import (
	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
	"github.com/xuri/excelize/v2"
)

// WriteCell writes a typed cell at the 0-based (row, col) position of sheet.
//
// Kinds are checked in the order bool, empty, number, string. A cell of any
// other kind is skipped without error.
func WriteCell(f *excelize.File, sheet string, row, col int, cell models.Cell) error {
	cellName, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}

	switch cell.Kind {
	case models.KindBool:
		return f.SetCellBool(sheet, cellName, cell.Bool)
	case models.KindEmpty:
		return f.SetCellStr(sheet, cellName, "")
	case models.KindNumber:
		return f.SetCellFloat(sheet, cellName, cell.Number, -1, 64)
	case models.KindString:
		return f.SetCellStr(sheet, cellName, cell.Text)
	default:
		return nil
	}
}

// WriteRow writes every cell of cells on the 0-based output row.
func WriteRow(f *excelize.File, sheet string, row int, cells models.Row) error {
	for col, cell := range cells {
		if err := WriteCell(f, sheet, row, col, cell); err != nil {
			return err
		}
	}
	return nil
}
