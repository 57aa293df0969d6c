package cardxlsx

import (
	"fmt"
	"strconv"
)

// Column indexes of the fixed six-column card layout.
const (
	ColA = iota
	ColB
	ColC
	ColD
	ColE
	ColF
)

// CellRef represents a single cell on the card sheet.
type CellRef struct {
	Sheet string // sheet name (empty = current sheet)
	Row   int    // 0-based row index
	Col   int    // 0-based column index
}

// NewCellRef creates a CellRef with explicit sheet, row, col.
func NewCellRef(sheet string, row, col int) CellRef {
	return CellRef{Sheet: sheet, Row: row, Col: col}
}

// String formats the CellRef as "Card!A1" or "A1" if no sheet.
func (c CellRef) String() string {
	name := c.CellName()
	if c.Sheet != "" {
		return c.Sheet + "!" + name
	}
	return name
}

// CellName returns just the cell part like "A1" without sheet name.
func (c CellRef) CellName() string {
	return ColToName(c.Col) + strconv.Itoa(c.Row+1)
}

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA"
func ColToName(col int) string {
	result := ""
	col++
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// AreaRef is a rectangular range of cells, used for merged blocks.
type AreaRef struct {
	First CellRef
	Last  CellRef
}

// RowSpan returns the range covering columns first..last of a single row.
func RowSpan(sheet string, row, first, last int) AreaRef {
	return AreaRef{First: NewCellRef(sheet, row, first), Last: NewCellRef(sheet, row, last)}
}

// String formats the AreaRef as "Card!A1:F1" or "A1:F1".
func (a AreaRef) String() string {
	if a.First.Sheet != "" {
		return a.First.Sheet + "!" + a.First.CellName() + ":" + a.Last.CellName()
	}
	return a.First.CellName() + ":" + a.Last.CellName()
}

// Single reports whether the range is one cell, which cannot be merged.
func (a AreaRef) Single() bool {
	return a.First.Row == a.Last.Row && a.First.Col == a.Last.Col
}

// Validate rejects ranges whose last cell precedes the first.
func (a AreaRef) Validate() error {
	if a.Last.Row < a.First.Row || a.Last.Col < a.First.Col {
		return fmt.Errorf("invalid range %s", a)
	}
	return nil
}

// SafeSheetName sanitizes a string for use as an Excel sheet name.
// It replaces forbidden characters ([]*?/\:) with underscore and truncates to 31 chars.
func SafeSheetName(name string) string {
	forbidden := []rune{'/', '\\', ':', '*', '?', '[', ']'}
	runes := []rune(name)
	for i, r := range runes {
		for _, f := range forbidden {
			if r == f {
				runes[i] = '_'
				break
			}
		}
	}
	if len(runes) > 31 {
		runes = runes[:31]
	}
	if len(runes) == 0 {
		return "Sheet1"
	}
	return string(runes)
}
