package cardxlsx

import (
	"strings"
	"time"
)

// Header rows, 0-based.
const (
	rowTitle = iota
	rowBand
	rowTopPanel
	rowList
	rowLabels
	rowLabelsGap
	rowDates
	rowLastActivity
	rowHeaderEnd
)

// DueStatus is the completion state shown next to the due date.
type DueStatus int

const (
	DueNone DueStatus = iota
	DueComplete
	DueOverdue
)

// DueStatusOf applies the three-way rule: a completed card is complete;
// otherwise a due date strictly before now is overdue; otherwise nothing.
// due and now must be in the same zone.
func DueStatusOf(dueComplete bool, due *time.Time, now time.Time) DueStatus {
	if dueComplete {
		return DueComplete
	}
	if due != nil && due.Before(now) {
		return DueOverdue
	}
	return DueNone
}

func renderHeader(c *renderContext) error {
	card, labels := c.card, c.prefs.Labels

	if err := c.band(rowTitle, card.Name, StyleTitle); err != nil {
		return err
	}
	if card.URL != "" {
		if err := c.surface.SetCellHyperLink(c.ref(rowTitle, ColA), card.URL); err != nil {
			return err
		}
	}
	if err := c.height(rowTitle, TitleRowHeight); err != nil {
		return err
	}
	if err := c.band(rowBand, "", StyleBand); err != nil {
		return err
	}
	if err := c.band(rowTopPanel, "", StylePanel); err != nil {
		return err
	}

	list := ""
	if name, ok := c.prefs.ListName(card.ListID); ok {
		list = labels.InList + " " + name
	}
	if err := c.band(rowList, list, StylePanel); err != nil {
		return err
	}
	if err := c.band(rowLabels, labelsLine(labels.Labels, card.Labels), StylePanel); err != nil {
		return err
	}
	if err := c.band(rowLabelsGap, "", StylePanel); err != nil {
		return err
	}

	if err := c.merge(rowDates, ColA, ColC, labels.StartDate+" : "+c.dates.Date(card.Start), StylePanel); err != nil {
		return err
	}
	if err := c.merge(rowDates, ColD, ColE, labels.DueDate+" : "+c.dates.DateTime(card.Due), StylePanel); err != nil {
		return err
	}
	status, style := c.dueStatus()
	if err := c.write(rowDates, ColF, status, style); err != nil {
		return err
	}

	lastActivity := labels.LastActivityDate + " : " + c.dates.DateTime(card.LastActivity)
	if err := c.merge(rowLastActivity, ColA, ColC, lastActivity, StylePanel); err != nil {
		return err
	}
	if err := c.merge(rowLastActivity, ColD, ColF, "", StylePanel); err != nil {
		return err
	}
	if err := c.band(rowHeaderEnd, "", StylePanel); err != nil {
		return err
	}

	c.row = rowHeaderEnd + 1
	return nil
}

// dueStatus returns the status text and style for the due cell.
func (c *renderContext) dueStatus() (string, StyleName) {
	var due *time.Time
	if c.card.Due != nil {
		d := c.dates.Convert(*c.card.Due)
		due = &d
	}
	switch DueStatusOf(c.card.DueComplete, due, c.now) {
	case DueComplete:
		return c.prefs.Labels.DueDateComplete, StyleDueComplete
	case DueOverdue:
		return c.prefs.Labels.DueDateOverdue, StyleDueOverdue
	default:
		return "", StylePanel
	}
}

// labelsLine is "<prefix> : a, b" with unnamed labels skipped. The prefix is
// written even when there are no labels.
func labelsLine(prefix string, labels []Label) string {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.Name != "" {
			names = append(names, l.Name)
		}
	}
	return prefix + " : " + strings.Join(names, ", ")
}
