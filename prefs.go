package cardxlsx

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

const prefsFileMode = 0o600

// DefaultPreferencesFile is the file looked up when no path is given.
const DefaultPreferencesFile = "config.yml"

// Sentinel errors.
var (
	ErrPreferencesNotFound = errors.New("preferences file not found")
	ErrInvalidPreferences  = errors.New("invalid preferences")
)

// Preferences are the display settings of the renderer. They are loaded once
// and only read afterwards.
type Preferences struct {
	Labels         Labels            `yaml:"labels"`
	Dates          Dates             `yaml:"dates"`
	Lists          map[string]string `yaml:"lists"`
	ActivityFilter string            `yaml:"activity_filter,omitempty"`
}

// Labels are the fixed texts written on the sheet.
type Labels struct {
	SheetName        string `yaml:"sheet_name"`
	InList           string `yaml:"in_list"`
	Labels           string `yaml:"labels"`
	StartDate        string `yaml:"start_date"`
	DueDate          string `yaml:"due_date"`
	DueDateComplete  string `yaml:"due_date_complete"`
	DueDateOverdue   string `yaml:"due_date_overdue"`
	LastActivityDate string `yaml:"last_activity_date"`
	Description      string `yaml:"description"`
	Checklists       string `yaml:"checklists"`
	Activity         string `yaml:"activity"`
	UserFullName     string `yaml:"user_full_name"`
}

// Dates holds the zone conversion and the Go layouts used to print dates.
type Dates struct {
	FromZone       string `yaml:"tz_from_zone"`
	ToZone         string `yaml:"tz_to_zone"`
	DateFormat     string `yaml:"date_format"`
	DateTimeFormat string `yaml:"datetime_format"`
}

// DefaultPreferences returns a complete English preference set.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Labels: Labels{
			SheetName:        "Card",
			InList:           "In list",
			Labels:           "Labels",
			StartDate:        "Start date",
			DueDate:          "Due date",
			DueDateComplete:  "Complete",
			DueDateOverdue:   "Overdue",
			LastActivityDate: "Last activity",
			Description:      "Description",
			Checklists:       "Checklists",
			Activity:         "Activity",
			UserFullName:     "fullName",
		},
		Dates: Dates{
			FromZone:       "UTC",
			ToZone:         "Local",
			DateFormat:     "02/01/2006",
			DateTimeFormat: "02/01/2006 15:04",
		},
		Lists: map[string]string{},
	}
}

// LoadPreferences reads and validates a YAML preferences file.
func LoadPreferences(path string) (*Preferences, error) {
	prefs, err := ReadPreferences(path)
	if err != nil {
		return nil, err
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return prefs, nil
}

// ReadPreferences parses a YAML preferences file without validating it.
func ReadPreferences(path string) (*Preferences, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path given by the user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPreferencesNotFound, path)
		}
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	var prefs Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidPreferences, path, err)
	}
	return &prefs, nil
}

// Save writes the preferences to path as YAML.
func (p *Preferences) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	return os.WriteFile(path, data, prefsFileMode)
}

// Validate checks that every label and date setting is present and usable.
func (p *Preferences) Validate() error {
	required := []struct{ key, value string }{
		{"labels.sheet_name", p.Labels.SheetName},
		{"labels.in_list", p.Labels.InList},
		{"labels.labels", p.Labels.Labels},
		{"labels.start_date", p.Labels.StartDate},
		{"labels.due_date", p.Labels.DueDate},
		{"labels.due_date_complete", p.Labels.DueDateComplete},
		{"labels.due_date_overdue", p.Labels.DueDateOverdue},
		{"labels.last_activity_date", p.Labels.LastActivityDate},
		{"labels.description", p.Labels.Description},
		{"labels.checklists", p.Labels.Checklists},
		{"labels.activity", p.Labels.Activity},
		{"labels.user_full_name", p.Labels.UserFullName},
		{"dates.tz_from_zone", p.Dates.FromZone},
		{"dates.tz_to_zone", p.Dates.ToZone},
		{"dates.date_format", p.Dates.DateFormat},
		{"dates.datetime_format", p.Dates.DateTimeFormat},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidPreferences, r.key)
		}
	}
	if _, err := NewDateConverter(p.Dates); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}
	if p.ActivityFilter != "" {
		if _, err := NewActivityFilter(p.ActivityFilter); err != nil {
			return fmt.Errorf("%w: activity_filter: %w", ErrInvalidPreferences, err)
		}
	}
	return nil
}

// ListName returns the display name configured for a list id.
func (p *Preferences) ListName(id string) (string, bool) {
	name, ok := p.Lists[id]
	return name, ok
}

// DateConverter moves export timestamps from the source zone to the display
// zone and formats them.
type DateConverter struct {
	from, to *time.Location
	dates    Dates
}

// NewDateConverter loads both zones of d.
func NewDateConverter(d Dates) (*DateConverter, error) {
	from, err := time.LoadLocation(d.FromZone)
	if err != nil {
		return nil, fmt.Errorf("tz_from_zone %q: %w", d.FromZone, err)
	}
	to, err := time.LoadLocation(d.ToZone)
	if err != nil {
		return nil, fmt.Errorf("tz_to_zone %q: %w", d.ToZone, err)
	}
	return &DateConverter{from: from, to: to, dates: d}, nil
}

// Convert reads the wall clock of t in the source zone and returns the same
// instant in the display zone.
func (c *DateConverter) Convert(t time.Time) time.Time {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), c.from)
	return wall.In(c.to)
}

// Date formats t with the date layout, or "" for a nil time.
func (c *DateConverter) Date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return c.Convert(*t).Format(c.dates.DateFormat)
}

// DateTime formats t with the date-time layout, or "" for a nil time.
func (c *DateConverter) DateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return c.Convert(*t).Format(c.dates.DateTimeFormat)
}

// Now converts the current UTC wall clock the same way as export dates, so
// comparisons with converted dates are consistent.
func (c *DateConverter) Now(now time.Time) time.Time {
	return c.Convert(now.UTC())
}
