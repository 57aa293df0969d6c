package cardxlsx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fixedNow is the clock used by render tests.
var fixedNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// testPreferences returns defaults with deterministic zones and one known list.
func testPreferences() *Preferences {
	p := DefaultPreferences()
	p.Dates.FromZone = "UTC"
	p.Dates.ToZone = "UTC"
	p.Lists = map[string]string{"list-1": "Doing"}
	return p
}

// testCardJSON is the "Test Card" scenario: one checklist whose items are
// stored out of position order.
const testCardJSON = `{
  "name": "Test Card",
  "desc": "First line\nSecond line",
  "idList": "list-1",
  "shortUrl": "https://trello.com/c/abc123",
  "labels": [{"name": "urgent"}, {"name": ""}, {"name": "backend"}],
  "start": "2024-01-10T08:00:00.000Z",
  "due": "2024-01-15T10:30:00.000Z",
  "dueComplete": false,
  "dateLastActivity": "2024-01-16T09:15:00.000Z",
  "checklists": [
    {"name": "Setup", "pos": 1, "checkItems": [
      {"name": "A", "pos": 2, "state": "complete"},
      {"name": "B", "pos": 1, "state": "incomplete"}
    ]}
  ]
}`

// commentsCardJSON has three actions, one of which is not a comment.
const commentsCardJSON = `{
  "name": "Comments",
  "desc": "",
  "idList": "list-1",
  "actions": [
    {"type": "commentCard", "date": "2024-02-01T10:00:00.000Z",
     "memberCreator": {"fullName": "Ada Lovelace", "initials": "AL"}, "data": {"text": "first"}},
    {"type": "updateCard", "date": "2024-02-01T11:00:00.000Z",
     "memberCreator": {"fullName": "Ada Lovelace"}, "data": {}},
    {"type": "commentCard", "date": "2024-02-01T12:00:00.000Z",
     "memberCreator": {"fullName": "Alan Turing", "initials": "AT"}, "data": {"text": "second"}}
  ]
}`

func mustParseCard(t *testing.T, data string) *Card {
	t.Helper()
	card, err := ParseCard([]byte(data))
	require.NoError(t, err)
	return card
}

// renderToFile renders a card and reads the workbook back with excelize.
func renderToFile(t *testing.T, card *Card, prefs *Preferences, opts ...Option) *excelize.File {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	data, err := RenderBytes(card, prefs, opts...)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

// recordedCell is one draw instruction captured by recordingSurface.
type recordedCell struct {
	Value any
	Style StyleName
	Span  string // "A1:F1" for merges, "" for single cells
}

// recordingSurface captures draw instructions in memory.
type recordingSurface struct {
	cells   map[string]recordedCell // keyed by top-left cell name
	order   []string                // cell names in write order
	heights map[int]float64         // 0-based row → height
	widths  map[int]float64
	links   map[string]string
	setup   *PageSetup

	failAt string // cell name whose write fails
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{
		cells:   make(map[string]recordedCell),
		heights: make(map[int]float64),
		widths:  make(map[int]float64),
		links:   make(map[string]string),
	}
}

var errRecordingFail = errors.New("recording surface failure")

func (s *recordingSurface) record(name string, cell recordedCell) error {
	if name == s.failAt {
		return fmt.Errorf("write %s: %w", name, errRecordingFail)
	}
	s.cells[name] = cell
	s.order = append(s.order, name)
	return nil
}

func (s *recordingSurface) SetCellValue(ref CellRef, value any, style StyleName) error {
	return s.record(ref.CellName(), recordedCell{Value: value, Style: style})
}

func (s *recordingSurface) MergeCells(area AreaRef, value any, style StyleName) error {
	span := area.First.CellName() + ":" + area.Last.CellName()
	return s.record(area.First.CellName(), recordedCell{Value: value, Style: style, Span: span})
}

func (s *recordingSurface) SetCellHyperLink(ref CellRef, url string) error {
	s.links[ref.CellName()] = url
	return nil
}

func (s *recordingSurface) SetRowHeight(_ string, row int, height float64) error {
	s.heights[row] = height
	return nil
}

func (s *recordingSurface) SetColWidth(_ string, first, last int, width float64) error {
	for c := first; c <= last; c++ {
		s.widths[c] = width
	}
	return nil
}

func (s *recordingSurface) SetPageSetup(_ string, setup PageSetup) error {
	s.setup = &setup
	return nil
}

func (s *recordingSurface) Write(io.Writer) error { return nil }
func (s *recordingSurface) Close() error         { return nil }

// value returns the recorded value of a cell, or nil.
func (s *recordingSurface) value(name string) any {
	return s.cells[name].Value
}

// renderRecorded renders onto a recordingSurface.
func renderRecorded(t *testing.T, card *Card, prefs *Preferences, opts ...Option) (*recordingSurface, *Document) {
	t.Helper()
	s := newRecordingSurface()
	opts = append([]Option{WithClock(fixedClock), WithSurface(s)}, opts...)
	doc, err := Render(card, prefs, opts...)
	require.NoError(t, err)
	return s, doc
}
