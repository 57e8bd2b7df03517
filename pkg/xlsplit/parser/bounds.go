package parser

import (
	"fmt"

	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
	"github.com/xuri/excelize/v2"
)

// UsedRange returns the bounding box of non-empty cells in A1 notation (e.g. "A1:D10").
// It returns an empty string when every cell is empty.
func UsedRange(rows []models.Row) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// ClipToUsedRange returns the rows inside the bounding box of non-empty cells,
// so the first used row and column become row 0 and column 0. Every row is
// padded with empty cells to the box width. It returns nil when every cell is empty.
func ClipToUsedRange(rows []models.Row) []models.Row {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	width := maxCol - minCol + 1
	clipped := make([]models.Row, 0, maxRow-minRow+1)
	for _, row := range rows[minRow : maxRow+1] {
		box := make(models.Row, width)
		for i := range box {
			if col := minCol + i; col < len(row) {
				box[i] = row[col]
			} else {
				box[i] = models.EmptyCell()
			}
		}
		clipped = append(clipped, box)
	}
	return clipped
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows []models.Row) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
