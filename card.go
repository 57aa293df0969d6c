package cardxlsx

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// CommentAction is the action type rendered in the activity log.
const CommentAction = "commentCard"

// Sentinel errors returned while reading a card.
var (
	ErrCardNotFound  = errors.New("card file not found")
	ErrMalformedCard = errors.New("malformed card")
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidDate   = errors.New("invalid date")
)

// Card is one exported card, read once and never modified.
type Card struct {
	Name         string
	Desc         string
	ListID       string
	URL          string
	Labels       []Label
	Start        *time.Time
	Due          *time.Time
	DueComplete  bool
	LastActivity *time.Time
	Checklists   []Checklist
	Actions      []Action
}

// Label is a card label; only its name is displayed.
type Label struct {
	Name string
}

// Checklist is a named group of check items.
type Checklist struct {
	Name  string
	Pos   float64
	Items []CheckItem
}

// CheckItem is one entry of a checklist.
type CheckItem struct {
	Name  string
	Pos   float64
	State string
}

// Complete reports whether the item is checked. Any state other than
// "complete" counts as incomplete.
func (i CheckItem) Complete() bool {
	return i.State == "complete"
}

// Action is an entry of the card's event log.
type Action struct {
	Type   string
	Date   *time.Time
	Member map[string]any
	Text   string
}

// IsComment reports whether the action is a comment.
func (a Action) IsComment() bool {
	return a.Type == CommentAction
}

// Author returns the member field used as display name, or "" when absent.
func (a Action) Author(field string) string {
	v, ok := a.Member[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// rawCard mirrors the export JSON. Pointers distinguish absent from empty.
type rawCard struct {
	Name             *string        `json:"name"`
	Desc             *string        `json:"desc"`
	IDList           *string        `json:"idList"`
	URL              string         `json:"url"`
	ShortURL         string         `json:"shortUrl"`
	Labels           []rawLabel     `json:"labels"`
	Start            *string        `json:"start"`
	Due              *string        `json:"due"`
	DueComplete      bool           `json:"dueComplete"`
	DateLastActivity *string        `json:"dateLastActivity"`
	Checklists       []rawChecklist `json:"checklists"`
	Actions          []rawAction    `json:"actions"`
}

type rawLabel struct {
	Name string `json:"name"`
}

type rawChecklist struct {
	Name       string         `json:"name"`
	Pos        float64        `json:"pos"`
	CheckItems []rawCheckItem `json:"checkItems"`
}

type rawCheckItem struct {
	Name  string  `json:"name"`
	Pos   float64 `json:"pos"`
	State string  `json:"state"`
}

type rawAction struct {
	Type          string         `json:"type"`
	Date          *string        `json:"date"`
	MemberCreator map[string]any `json:"memberCreator"`
	Data          struct {
		Text string `json:"text"`
	} `json:"data"`
}

// ReadCard reads and parses a card JSON file.
func ReadCard(path string) (*Card, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path given by the user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCardNotFound, path)
		}
		return nil, fmt.Errorf("read card %q: %w", path, err)
	}
	card, err := ParseCard(data)
	if err != nil {
		return nil, fmt.Errorf("parse card %q: %w", path, err)
	}
	return card, nil
}

// ParseCard decodes an exported card. Missing required fields and
// unparseable dates are errors; every other absent field stays empty.
func ParseCard(data []byte) (*Card, error) {
	var raw rawCard
	if err := sonic.ConfigStd.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCard, err)
	}

	switch {
	case raw.Name == nil:
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "name")
	case raw.Desc == nil:
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "desc")
	case raw.IDList == nil:
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "idList")
	}

	card := &Card{
		Name:        *raw.Name,
		Desc:        *raw.Desc,
		ListID:      *raw.IDList,
		URL:         raw.ShortURL,
		DueComplete: raw.DueComplete,
	}
	if card.URL == "" {
		card.URL = raw.URL
	}

	var err error
	if card.Start, err = parseOptionalDate("start", raw.Start); err != nil {
		return nil, err
	}
	if card.Due, err = parseOptionalDate("due", raw.Due); err != nil {
		return nil, err
	}
	if card.LastActivity, err = parseOptionalDate("dateLastActivity", raw.DateLastActivity); err != nil {
		return nil, err
	}

	for _, l := range raw.Labels {
		card.Labels = append(card.Labels, Label{Name: l.Name})
	}

	for _, cl := range raw.Checklists {
		checklist := Checklist{Name: cl.Name, Pos: cl.Pos}
		for _, it := range cl.CheckItems {
			checklist.Items = append(checklist.Items, CheckItem{Name: it.Name, Pos: it.Pos, State: it.State})
		}
		card.Checklists = append(card.Checklists, checklist)
	}

	for i, ra := range raw.Actions {
		action := Action{Type: ra.Type, Member: ra.MemberCreator, Text: ra.Data.Text}
		field := fmt.Sprintf("actions[%d].date", i)
		if action.Date, err = parseOptionalDate(field, ra.Date); err != nil {
			return nil, err
		}
		if action.IsComment() && action.Date == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, field)
		}
		card.Actions = append(card.Actions, action)
	}

	return card, nil
}

// dateLayouts are tried in order when parsing export dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses an export timestamp, keeping its wall clock. The
// configured source zone is applied later by Preferences.Convert.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func parseOptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", field, err)
	}
	return &t, nil
}
