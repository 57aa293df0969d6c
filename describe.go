package cardxlsx

import (
	"fmt"
	"strings"
	"time"
)

// String returns a lower-case name of the status.
func (s DueStatus) String() string {
	switch s {
	case DueComplete:
		return "complete"
	case DueOverdue:
		return "overdue"
	default:
		return "none"
	}
}

// Describe returns a human-readable outline of what Render would write for
// card: header fields, description size, checklists in display order and the
// filtered activity log. Useful to check a card and preferences without
// opening the workbook.
func Describe(card *Card, prefs *Preferences, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	dates, err := NewDateConverter(prefs.Dates)
	if err != nil {
		return "", err
	}
	filterSrc := o.activityFilter
	if filterSrc == "" {
		filterSrc = prefs.ActivityFilter
	}
	filter, err := NewActivityFilter(filterSrc)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Card: %s\n", card.Name)
	if card.URL != "" {
		fmt.Fprintf(&b, "  URL: %s\n", card.URL)
	}
	if name, ok := prefs.ListName(card.ListID); ok {
		fmt.Fprintf(&b, "  List: %s\n", name)
	} else {
		fmt.Fprintf(&b, "  List: <unknown %q>\n", card.ListID)
	}
	fmt.Fprintf(&b, "  %s\n", labelsLine("Labels", card.Labels))
	fmt.Fprintf(&b, "  Start: %s\n", dates.Date(card.Start))
	fmt.Fprintf(&b, "  Due: %s (%s)\n", dates.DateTime(card.Due), describeDue(card, dates, o.clock()))
	fmt.Fprintf(&b, "  Last activity: %s\n", dates.DateTime(card.LastActivity))
	fmt.Fprintf(&b, "  Description: %d chars, row height %.0f\n",
		len([]rune(card.Desc)), DescriptionRowHeight(card.Desc, o.baseRowHeight))

	checklists := SortedChecklists(card)
	if len(checklists) > 0 {
		b.WriteString("  Checklists:\n")
	}
	for _, cl := range checklists {
		done, total := cl.Progress()
		if ratio, ok := cl.Ratio(); ok {
			fmt.Fprintf(&b, "    %s (%d/%d, %.0f%%)\n", cl.Name, done, total, ratio*100)
		} else {
			fmt.Fprintf(&b, "    %s (empty)\n", cl.Name)
		}
		for _, it := range cl.Items {
			glyph := GlyphOpen
			if it.Complete() {
				glyph = GlyphComplete
			}
			fmt.Fprintf(&b, "      [%s] %s\n", glyph, it.Name)
		}
	}

	entries, err := ActivityEntries(card, filter, prefs.Labels.UserFullName, dates)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "  Activity: %d of %d actions (filter %s)\n", len(entries), len(card.Actions), filter)
	for _, a := range entries {
		fmt.Fprintf(&b, "    %s %s: %s\n", dates.DateTime(a.Date), a.Author(prefs.Labels.UserFullName), firstLine(a.Text))
	}
	return b.String(), nil
}

func describeDue(card *Card, dates *DateConverter, now time.Time) DueStatus {
	var due *time.Time
	if card.Due != nil {
		d := dates.Convert(*card.Due)
		due = &d
	}
	return DueStatusOf(card.DueComplete, due, dates.Now(now))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
