package cardxlsx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColToName(t *testing.T) {
	assert.Equal(t, "A", ColToName(ColA))
	assert.Equal(t, "F", ColToName(ColF))
	assert.Equal(t, "Z", ColToName(25))
	assert.Equal(t, "AA", ColToName(26))
	assert.Equal(t, "AZ", ColToName(51))
}

func TestCellRef(t *testing.T) {
	ref := NewCellRef("Card", 0, ColA)
	assert.Equal(t, "A1", ref.CellName())
	assert.Equal(t, "Card!A1", ref.String())
	assert.Equal(t, "F15", NewCellRef("", 14, ColF).String())
}

func TestAreaRef(t *testing.T) {
	area := RowSpan("Card", 6, ColA, ColC)
	assert.Equal(t, "Card!A7:C7", area.String())
	assert.False(t, area.Single())
	assert.NoError(t, area.Validate())

	single := RowSpan("", 6, ColF, ColF)
	assert.True(t, single.Single())
	assert.Equal(t, "F7:F7", single.String())

	assert.Error(t, RowSpan("", 0, ColF, ColA).Validate())
}

func TestSafeSheetName(t *testing.T) {
	assert.Equal(t, "Card", SafeSheetName("Card"))
	assert.Equal(t, "a_b_c_d", SafeSheetName("a/b:c?d"))
	assert.Equal(t, "Sheet1", SafeSheetName(""))
	assert.Equal(t, strings.Repeat("x", 31), SafeSheetName(strings.Repeat("x", 40)))
}
