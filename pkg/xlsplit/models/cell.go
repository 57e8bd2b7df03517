// Package models defines data structures for workbook splitting.
package models

import "strconv"

// Kind identifies which value of a Cell is active.
type Kind uint8

const (
	// KindEmpty is a cell with no value.
	KindEmpty Kind = iota
	// KindBool is a boolean cell.
	KindBool
	// KindNumber is a numeric cell. Integers are widened to float64.
	KindNumber
	// KindString is a text cell.
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is a single typed value. Only the field matching Kind is meaningful.
type Cell struct {
	Kind   Kind
	Bool   bool
	Number float64
	Text   string
}

// EmptyCell returns a cell with no value.
func EmptyCell() Cell { return Cell{Kind: KindEmpty} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// StringCell returns a text cell.
func StringCell(s string) Cell { return Cell{Kind: KindString, Text: s} }

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// Value returns the active value as bool, float64, string, or nil for empty cells.
func (c Cell) Value() interface{} {
	switch c.Kind {
	case KindBool:
		return c.Bool
	case KindNumber:
		return c.Number
	case KindString:
		return c.Text
	default:
		return nil
	}
}

// Row is an ordered sequence of cells. The column index is the position (0-based).
type Row []Cell
