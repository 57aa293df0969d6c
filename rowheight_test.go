package cardxlsx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateLines(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  int
	}{
		{"", 80, 0},
		{"short", 80, 1},
		{strings.Repeat("x", 80), 80, 1},
		{strings.Repeat("x", 81), 80, 2},
		{"a\nb\nc", 80, 3},
		{strings.Repeat("é", 61), 60, 2},
		{strings.Repeat("x", 200) + "\n", 70, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateLines(tt.text, tt.width), "%q/%d", tt.text, tt.width)
	}
}

func TestDescriptionRowHeight(t *testing.T) {
	assert.Equal(t, 15.0, DescriptionRowHeight("", 15))
	assert.Equal(t, 15.0, DescriptionRowHeight("one line", 15))
	assert.Equal(t, 30.0, DescriptionRowHeight("a\nb", 15))
	assert.Equal(t, 45.0, DescriptionRowHeight(strings.Repeat("x", 161), 15))
	assert.Equal(t, 20.0, DescriptionRowHeight("x", 20))
}

func TestCheckItemRowHeight(t *testing.T) {
	assert.Equal(t, 15.0, CheckItemRowHeight("item", 15))
	assert.Equal(t, 30.0, CheckItemRowHeight(strings.Repeat("x", 71), 15))
}

func TestCommentRowHeight(t *testing.T) {
	assert.Equal(t, 60.0, CommentRowHeight("", 15))
	assert.Equal(t, 60.0, CommentRowHeight("a\nb\nc", 15))
	// 5 lines of text plus the author line.
	assert.Equal(t, 90.0, CommentRowHeight("1\n2\n3\n4\n5", 15))
	assert.Equal(t, 75.0, CommentRowHeight(strings.Repeat("x", 240), 15))
}
