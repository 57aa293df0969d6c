package cardxlsx

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// renderContext carries the inputs of one render call and the row cursor
// shared by the stages. Nothing in it outlives the call.
type renderContext struct {
	surface Surface
	sheet   string
	card    *Card
	prefs   *Preferences
	dates   *DateConverter
	filter  *ActivityFilter
	now     time.Time // current time in the display zone
	base    float64   // height of one text line
	row     int       // next writable row, 0-based
	log     log.FieldLogger
}

func (c *renderContext) ref(row, col int) CellRef {
	return NewCellRef(c.sheet, row, col)
}

// write sets one cell.
func (c *renderContext) write(row, col int, value any, style StyleName) error {
	return c.surface.SetCellValue(c.ref(row, col), value, style)
}

// merge writes value across columns first..last of row.
func (c *renderContext) merge(row, first, last int, value any, style StyleName) error {
	return c.surface.MergeCells(RowSpan(c.sheet, row, first, last), value, style)
}

// band writes a full-width (A:F) block.
func (c *renderContext) band(row int, value any, style StyleName) error {
	return c.merge(row, ColA, ColF, value, style)
}

func (c *renderContext) height(row int, h float64) error {
	return c.surface.SetRowHeight(c.sheet, row, h)
}

// stageLog returns a logger tagged with the stage name and cursor.
func (c *renderContext) stageLog(stage string) log.FieldLogger {
	return c.log.WithFields(log.Fields{"stage": stage, "row": c.row + 1})
}
