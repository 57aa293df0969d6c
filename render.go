package cardxlsx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Document is a rendered card sheet.
type Document struct {
	// Sheet is the name of the card sheet.
	Sheet string
	// Rows is the number of rows the renderer advanced through.
	Rows int

	surface Surface
}

// Surface returns the surface the document was drawn on.
func (d *Document) Surface() Surface {
	return d.surface
}

// Write writes the workbook to w.
func (d *Document) Write(w io.Writer) error {
	return d.surface.Write(w)
}

// Bytes returns the encoded workbook.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.surface.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close releases the underlying workbook.
func (d *Document) Close() error {
	return d.surface.Close()
}

type stage struct {
	name string
	fn   func(*renderContext) error
}

var stages = []stage{
	{"setup", renderSetup},
	{"header", renderHeader},
	{"description", renderDescription},
	{"checklists", renderChecklists},
	{"activity", renderActivity},
}

// Render draws card onto a new single-sheet workbook using prefs. The card
// must already be parsed; absent optional fields render as empty text.
func Render(card *Card, prefs *Preferences, opts ...Option) (*Document, error) {
	if card == nil {
		return nil, errors.New("render: nil card")
	}
	if prefs == nil {
		return nil, errors.New("render: nil preferences")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	dates, err := NewDateConverter(prefs.Dates)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	filterSrc := o.activityFilter
	if filterSrc == "" {
		filterSrc = prefs.ActivityFilter
	}
	filter, err := NewActivityFilter(filterSrc)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	surface, sheet, owned := o.surface, "", false
	if surface == nil {
		es, err := NewExcelizeSurface(prefs.Labels.SheetName)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		surface, sheet, owned = es, es.Sheet(), true
	}

	ctx := &renderContext{
		surface: surface,
		sheet:   sheet,
		card:    card,
		prefs:   prefs,
		dates:   dates,
		filter:  filter,
		now:     dates.Now(o.clock()),
		base:    o.baseRowHeight,
		log:     o.logger,
	}

	for _, s := range stages {
		ctx.stageLog(s.name).Debug("render stage")
		if err := s.fn(ctx); err != nil {
			if owned {
				surface.Close()
			}
			return nil, fmt.Errorf("render %s: %w", s.name, err)
		}
	}

	ctx.log.WithField("rows", ctx.row).Debug("render done")
	return &Document{Sheet: sheet, Rows: ctx.row, surface: surface}, nil
}

// RenderWriter renders card and writes the workbook to w.
func RenderWriter(card *Card, prefs *Preferences, w io.Writer, opts ...Option) error {
	doc, err := Render(card, prefs, opts...)
	if err != nil {
		return err
	}
	defer doc.Close()
	return doc.Write(w)
}

// RenderBytes renders card and returns the workbook as bytes.
func RenderBytes(card *Card, prefs *Preferences, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderWriter(card, prefs, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderFile renders card and writes the workbook to outputPath.
func RenderFile(card *Card, prefs *Preferences, outputPath string, opts ...Option) error {
	doc, err := Render(card, prefs, opts...)
	if err != nil {
		return err
	}
	defer doc.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", outputPath, err)
	}
	defer out.Close()

	if err := doc.Write(out); err != nil {
		return fmt.Errorf("write output file %q: %w", outputPath, err)
	}
	return nil
}

// renderSetup applies page layout and column widths.
func renderSetup(c *renderContext) error {
	if err := c.surface.SetPageSetup(c.sheet, cardPageSetup(c.base)); err != nil {
		return err
	}
	for _, col := range cardColumns {
		if err := c.surface.SetColWidth(c.sheet, col.First, col.Last, col.Width); err != nil {
			return err
		}
	}
	return nil
}
