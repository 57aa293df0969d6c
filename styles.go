package cardxlsx

import "github.com/xuri/excelize/v2"

// StyleName identifies one of the fixed cell formats of the card sheet.
type StyleName string

// Cell formats used by the renderer.
const (
	StyleDefault        StyleName = ""
	StyleTitle          StyleName = "title"
	StyleHeading        StyleName = "heading"
	StyleSubHeading     StyleName = "subHeading"
	StyleBand           StyleName = "band"
	StylePanel          StyleName = "panel"
	StyleDueComplete    StyleName = "dueComplete"
	StyleDueOverdue     StyleName = "dueOverdue"
	StyleDescription    StyleName = "description"
	StyleGlyphComplete  StyleName = "glyphComplete"
	StyleGlyphOpen      StyleName = "glyphOpen"
	StyleItemComplete   StyleName = "itemComplete"
	StyleItemOpen       StyleName = "itemOpen"
	StylePercent        StyleName = "percent"
	StyleActivityHeader StyleName = "activityHeader"
	StyleActivityText   StyleName = "activityText"
)

// percentNumFmt is the built-in "0%" number format.
const percentNumFmt = 9

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func topLeft(indent int, wrap bool) *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "left", Vertical: "top", Indent: indent, WrapText: wrap}
}

// styleSheet holds the excelize definition of every named style.
var styleSheet = map[StyleName]*excelize.Style{
	StyleTitle: {
		Font:      &excelize.Font{Color: "FFFFFF", Family: "Calibri", Size: 16, Bold: true},
		Fill:      solidFill("3969AD"),
		Alignment: topLeft(1, true),
	},
	StyleHeading: {
		Font:      &excelize.Font{Color: "000000", Family: "Calibri", Size: 14, Bold: true},
		Alignment: topLeft(1, false),
	},
	StyleSubHeading: {
		Font:      &excelize.Font{Color: "000000", Family: "Calibri", Size: 12, Bold: true, Italic: true},
		Alignment: topLeft(2, false),
	},
	StyleBand: {
		Font:      &excelize.Font{Color: "FFFFFF"},
		Fill:      solidFill("2D5389"),
		Alignment: topLeft(1, true),
	},
	StylePanel: {
		Font:      &excelize.Font{Color: "000000"},
		Fill:      solidFill("EFEFEF"),
		Alignment: topLeft(1, true),
	},
	StyleDueComplete: {
		Font:      &excelize.Font{Color: "000000"},
		Fill:      solidFill("B6D7A8"),
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	},
	StyleDueOverdue: {
		Font:      &excelize.Font{Color: "000000"},
		Fill:      solidFill("FABF8F"),
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	},
	StyleDescription: {
		Alignment: topLeft(1, true),
	},
	StyleGlyphComplete: {
		Font:      &excelize.Font{Color: "B6D7A8", Bold: true, Italic: true},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "top"},
	},
	StyleGlyphOpen: {
		Font:      &excelize.Font{Color: "FF0000", Bold: true, Italic: true},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "top"},
	},
	StyleItemComplete: {
		Font:      &excelize.Font{Strike: true},
		Alignment: topLeft(0, true),
	},
	StyleItemOpen: {
		Alignment: topLeft(0, true),
	},
	StylePercent: {
		NumFmt: percentNumFmt,
	},
	StyleActivityHeader: {
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "top", WrapText: true},
	},
	StyleActivityText: {
		Alignment: topLeft(0, true),
	},
}
