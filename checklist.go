package cardxlsx

import (
	"cmp"
	"slices"
)

// Status glyphs written in column A of checklist items.
const (
	GlyphComplete = "V"
	GlyphOpen     = "X"
)

// SortedChecklists returns the checklists to display: unnamed ones dropped,
// the rest stably ordered by position, each with its items stably ordered
// by position. The card is not modified.
func SortedChecklists(card *Card) []Checklist {
	out := make([]Checklist, 0, len(card.Checklists))
	for _, cl := range card.Checklists {
		if cl.Name == "" {
			continue
		}
		items := slices.Clone(cl.Items)
		slices.SortStableFunc(items, func(a, b CheckItem) int { return cmp.Compare(a.Pos, b.Pos) })
		out = append(out, Checklist{Name: cl.Name, Pos: cl.Pos, Items: items})
	}
	slices.SortStableFunc(out, func(a, b Checklist) int { return cmp.Compare(a.Pos, b.Pos) })
	return out
}

// Progress returns the number of complete items and the total.
func (cl Checklist) Progress() (done, total int) {
	for _, it := range cl.Items {
		if it.Complete() {
			done++
		}
	}
	return done, len(cl.Items)
}

// Ratio is the completed fraction; ok is false for an empty checklist.
func (cl Checklist) Ratio() (ratio float64, ok bool) {
	done, total := cl.Progress()
	if total == 0 {
		return 0, false
	}
	return float64(done) / float64(total), true
}

func renderChecklists(c *renderContext) error {
	if len(c.card.Checklists) == 0 {
		return nil
	}
	if err := c.write(c.row, ColA, c.prefs.Labels.Checklists, StyleHeading); err != nil {
		return err
	}

	for _, cl := range SortedChecklists(c.card) {
		c.row++
		titleRow := c.row
		if err := c.write(titleRow, ColA, cl.Name, StyleSubHeading); err != nil {
			return err
		}

		for _, it := range cl.Items {
			c.row++
			if err := c.checkItem(c.row, it); err != nil {
				return err
			}
		}

		if ratio, ok := cl.Ratio(); ok {
			if err := c.write(titleRow, ColF, ratio, StylePercent); err != nil {
				return err
			}
		}
		c.row++
	}
	return nil
}

func (c *renderContext) checkItem(row int, it CheckItem) error {
	glyph, glyphStyle, textStyle := GlyphOpen, StyleGlyphOpen, StyleItemOpen
	if it.Complete() {
		glyph, glyphStyle, textStyle = GlyphComplete, StyleGlyphComplete, StyleItemComplete
	}
	if err := c.write(row, ColA, glyph, glyphStyle); err != nil {
		return err
	}
	if err := c.merge(row, ColB, ColF, it.Name, textStyle); err != nil {
		return err
	}
	return c.height(row, CheckItemRowHeight(it.Name, c.base))
}
