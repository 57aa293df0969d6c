package cardxlsx

import "io"

// Surface abstracts the spreadsheet operations the renderer needs. Rows and
// columns are 0-based everywhere.
type Surface interface {
	// Cell content
	SetCellValue(ref CellRef, value any, style StyleName) error
	MergeCells(area AreaRef, value any, style StyleName) error
	SetCellHyperLink(ref CellRef, url string) error

	// Sheet geometry
	SetRowHeight(sheet string, row int, height float64) error
	SetColWidth(sheet string, firstCol, lastCol int, width float64) error
	SetPageSetup(sheet string, setup PageSetup) error

	// I/O
	Write(w io.Writer) error
	Close() error
}

// PageSetup describes print layout and default geometry of a sheet.
type PageSetup struct {
	Portrait         bool
	PaperSize        int // excelize paper size index, 9 = A4
	MarginLeft       float64
	MarginRight      float64
	MarginTop        float64
	MarginBottom     float64
	DefaultRowHeight float64
}

// ColumnWidth sets the width of an inclusive column range.
type ColumnWidth struct {
	First, Last int
	Width       float64
}

// cardPageSetup is the print layout of every card sheet.
func cardPageSetup(baseRowHeight float64) PageSetup {
	return PageSetup{
		Portrait:         true,
		PaperSize:        9,
		MarginLeft:       0.6,
		MarginRight:      0.6,
		MarginTop:        0.75,
		MarginBottom:     0.75,
		DefaultRowHeight: baseRowHeight,
	}
}

// cardColumns are the fixed widths of columns A..F.
var cardColumns = []ColumnWidth{
	{First: ColA, Last: ColA, Width: 5},
	{First: ColB, Last: ColB, Width: 12},
	{First: ColC, Last: ColF, Width: 17},
}
