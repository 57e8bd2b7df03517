package parser

import (
	"fmt"
	"strings"

	"github.com/extrame/xls"
	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
)

// xlsMaxCols is the BIFF8 column limit.
const xlsMaxCols = 256

// firstXLSSheet decodes the worksheet at index 0. The codec panics on some
// malformed sheet streams, so panics are reported as errors.
func firstXLSSheet(wb *xls.WorkBook) (sheet *models.Sheet, err error) {
	defer func() {
		if r := recover(); r != nil {
			sheet, err = nil, fmt.Errorf("%w: malformed xls sheet: %v", ErrInvalidFormat, r)
		}
	}()

	if wb.NumSheets() == 0 {
		return nil, ErrNoSheets
	}
	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, ErrNoSheets
	}
	return newSheet(ws.Name, ExtractXLSCells(ws)), nil
}

// ExtractXLSCells extracts typed rows from a legacy BIFF worksheet.
// The codec only exposes formatted text, so cell types are inferred from it.
func ExtractXLSCells(ws *xls.WorkSheet) []models.Row {
	rows := make([]models.Row, 0, int(ws.MaxRow)+1)
	for rowIdx := 0; rowIdx <= int(ws.MaxRow); rowIdx++ {
		r := xlsRow(ws, rowIdx)
		if r == nil {
			rows = append(rows, nil)
			continue
		}

		// LastCol is one past the last cell of the ROW record. Rows known
		// only from their cells carry no bound.
		width := r.LastCol()
		if width <= 0 {
			width = xlsMaxCols
		}
		cells := make(models.Row, 0, width)
		for colIdx := 0; colIdx < width; colIdx++ {
			cells = append(cells, xlsCell(r.Col(colIdx)))
		}
		rows = append(rows, trimRow(cells))
	}

	return trimRows(rows)
}

// xlsRow returns row i, or nil when the sheet has neither a ROW record nor
// cells for it. The codec dereferences missing rows.
func xlsRow(ws *xls.WorkSheet, i int) (r *xls.Row) {
	defer func() {
		if recover() != nil {
			r = nil
		}
	}()
	return ws.Row(i)
}

// xlsCell infers a typed cell from the formatted text of a BIFF cell.
func xlsCell(s string) models.Cell {
	switch {
	case strings.EqualFold(s, "TRUE"):
		return models.BoolCell(true)
	case strings.EqualFold(s, "FALSE"):
		return models.BoolCell(false)
	default:
		return parseValue(s)
	}
}
