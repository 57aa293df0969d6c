package cardxlsx

import (
	"fmt"
	"io"
	"sync"

	"github.com/xuri/excelize/v2"
)

// ExcelizeSurface implements Surface using excelize.
type ExcelizeSurface struct {
	file   *excelize.File
	sheet  string
	styles map[StyleName]int // named style → excelize style ID

	mu sync.Mutex
}

// NewExcelizeSurface creates a workbook with a single sheet called sheet.
func NewExcelizeSurface(sheet string) (*ExcelizeSurface, error) {
	f := excelize.NewFile()
	name := SafeSheetName(sheet)
	if name != "Sheet1" {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			f.Close()
			return nil, fmt.Errorf("rename sheet to %q: %w", name, err)
		}
	}
	return &ExcelizeSurface{
		file:   f,
		sheet:  name,
		styles: make(map[StyleName]int),
	}, nil
}

// Sheet returns the sanitized name of the card sheet.
func (s *ExcelizeSurface) Sheet() string {
	return s.sheet
}

// styleID returns the excelize ID for a named style, registering it on first use.
func (s *ExcelizeSurface) styleID(name StyleName) (int, error) {
	if name == StyleDefault {
		return 0, nil
	}
	if id, ok := s.styles[name]; ok {
		return id, nil
	}
	def, ok := styleSheet[name]
	if !ok {
		return 0, fmt.Errorf("unknown style %q", name)
	}
	id, err := s.file.NewStyle(def)
	if err != nil {
		return 0, fmt.Errorf("register style %q: %w", name, err)
	}
	s.styles[name] = id
	return id, nil
}

func (s *ExcelizeSurface) sheetOf(ref CellRef) string {
	if ref.Sheet == "" {
		return s.sheet
	}
	return ref.Sheet
}

// SetCellValue writes a value and applies a named style to one cell.
func (s *ExcelizeSurface) SetCellValue(ref CellRef, value any, style StyleName) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := s.sheetOf(ref)
	cell := ref.CellName()
	if err := s.file.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("set value %s: %w", ref, err)
	}
	return s.applyStyle(sheet, cell, cell, style)
}

// MergeCells writes a value into the top-left cell, merges the range and styles
// every cell of it so fills and borders cover the whole block.
func (s *ExcelizeSurface) MergeCells(area AreaRef, value any, style StyleName) error {
	if err := area.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := s.sheetOf(area.First)
	topLeft := area.First.CellName()
	bottomRight := area.Last.CellName()
	if err := s.file.SetCellValue(sheet, topLeft, value); err != nil {
		return fmt.Errorf("set value %s: %w", area.First, err)
	}
	if !area.Single() {
		if err := s.file.MergeCell(sheet, topLeft, bottomRight); err != nil {
			return fmt.Errorf("merge cells %s: %w", area, err)
		}
	}
	return s.applyStyle(sheet, topLeft, bottomRight, style)
}

func (s *ExcelizeSurface) applyStyle(sheet, first, last string, style StyleName) error {
	if style == StyleDefault {
		return nil
	}
	id, err := s.styleID(style)
	if err != nil {
		return err
	}
	if err := s.file.SetCellStyle(sheet, first, last, id); err != nil {
		return fmt.Errorf("style %s:%s: %w", first, last, err)
	}
	return nil
}

// SetCellHyperLink attaches an external link to a cell.
func (s *ExcelizeSurface) SetCellHyperLink(ref CellRef, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.file.SetCellHyperLink(s.sheetOf(ref), ref.CellName(), url, "External"); err != nil {
		return fmt.Errorf("hyperlink %s: %w", ref, err)
	}
	return nil
}

// SetRowHeight sets the height of a 0-based row.
func (s *ExcelizeSurface) SetRowHeight(sheet string, row int, height float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sheet == "" {
		sheet = s.sheet
	}
	if err := s.file.SetRowHeight(sheet, row+1, height); err != nil {
		return fmt.Errorf("row %d height %.1f: %w", row+1, height, err)
	}
	return nil
}

// SetColWidth sets the width of an inclusive 0-based column range.
func (s *ExcelizeSurface) SetColWidth(sheet string, firstCol, lastCol int, width float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sheet == "" {
		sheet = s.sheet
	}
	first, last := ColToName(firstCol), ColToName(lastCol)
	if err := s.file.SetColWidth(sheet, first, last, width); err != nil {
		return fmt.Errorf("column %s:%s width: %w", first, last, err)
	}
	return nil
}

// SetPageSetup applies orientation, paper size, margins and default row height.
func (s *ExcelizeSurface) SetPageSetup(sheet string, setup PageSetup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sheet == "" {
		sheet = s.sheet
	}

	orientation := "landscape"
	if setup.Portrait {
		orientation = "portrait"
	}
	size := setup.PaperSize
	if err := s.file.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
	}); err != nil {
		return fmt.Errorf("page layout: %w", err)
	}

	left, right := setup.MarginLeft, setup.MarginRight
	top, bottom := setup.MarginTop, setup.MarginBottom
	if err := s.file.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
		Left:   &left,
		Right:  &right,
		Top:    &top,
		Bottom: &bottom,
	}); err != nil {
		return fmt.Errorf("page margins: %w", err)
	}

	if setup.DefaultRowHeight > 0 {
		height := setup.DefaultRowHeight
		custom := true
		if err := s.file.SetSheetProps(sheet, &excelize.SheetPropsOptions{
			DefaultRowHeight: &height,
			CustomHeight:     &custom,
		}); err != nil {
			return fmt.Errorf("default row height: %w", err)
		}
	}
	return nil
}

// Write writes the workbook to the given writer.
func (s *ExcelizeSurface) Write(w io.Writer) error {
	return s.file.Write(w)
}

// Close closes the underlying excelize file.
func (s *ExcelizeSurface) Close() error {
	return s.file.Close()
}

// File returns the underlying excelize file for advanced operations.
func (s *ExcelizeSurface) File() *excelize.File {
	return s.file
}
