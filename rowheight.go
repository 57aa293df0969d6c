package cardxlsx

import (
	"strings"
	"unicode/utf8"
)

// Line widths, in characters, used to estimate wrapping.
const (
	DescriptionLineWidth = 80
	CheckItemLineWidth   = 70
	CommentLineWidth     = 60
)

// DefaultBaseRowHeight is the height of one text line, in points.
const DefaultBaseRowHeight = 15

// Fixed heights, in points.
const (
	TitleRowHeight      = 60
	MinCommentRowHeight = 60
)

// EstimateLines guesses how many lines text wraps to in a cell that fits
// width characters per line. Explicit line breaks win when they need more
// lines than the character count does. It does not measure rendered text.
func EstimateLines(text string, width int) int {
	n := utf8.RuneCountInString(text)
	lines := (n + width - 1) / width
	if breaks := strings.Count(text, "\n"); breaks > 0 && breaks+1 > lines {
		return breaks + 1
	}
	return lines
}

// DescriptionRowHeight is max(ceil(L/80), newlines+1) lines of base height.
func DescriptionRowHeight(text string, base float64) float64 {
	lines := EstimateLines(text, DescriptionLineWidth)
	if minLines := strings.Count(text, "\n") + 1; lines < minLines {
		lines = minLines
	}
	return float64(lines) * base
}

// CheckItemRowHeight sizes a checklist item row.
func CheckItemRowHeight(text string, base float64) float64 {
	return float64(EstimateLines(text, CheckItemLineWidth)) * base
}

// CommentRowHeight sizes an activity row: one extra line for the author, and
// never less than MinCommentRowHeight.
func CommentRowHeight(text string, base float64) float64 {
	h := float64(EstimateLines(text, CommentLineWidth)+1) * base
	if h < MinCommentRowHeight {
		return MinCommentRowHeight
	}
	return h
}
