package models

// Sheet represents the rows of a single worksheet.
type Sheet struct {
	// Name is the worksheet name in the source workbook.
	Name string
	// UsedRange is the source range Rows were read from, in A1 notation.
	// It is empty when the sheet has no data.
	UsedRange string
	// Rows holds the rows of the used range in source order. Row 0 is the
	// first used row and column 0 the first used column.
	Rows []Row
}

// Len returns the number of rows in the sheet.
func (s *Sheet) Len() int {
	return len(s.Rows)
}

// Head returns a copy of the first n rows, or of every row when the sheet is shorter.
// A non-positive n yields nil.
func (s *Sheet) Head(n int) []Row {
	if n <= 0 {
		return nil
	}
	if n > len(s.Rows) {
		n = len(s.Rows)
	}
	head := make([]Row, n)
	for i := range head {
		head[i] = append(Row(nil), s.Rows[i]...)
	}
	return head
}
