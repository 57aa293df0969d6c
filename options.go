package cardxlsx

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// Options holds configuration for a render call.
type Options struct {
	clock          func() time.Time
	logger         log.FieldLogger
	activityFilter string
	baseRowHeight  float64
	surface        Surface
}

func defaultOptions() *Options {
	discard := log.New()
	discard.SetOutput(io.Discard)
	return &Options{
		clock:         time.Now,
		logger:        discard,
		baseRowHeight: DefaultBaseRowHeight,
	}
}

// Option configures a render call.
type Option func(*Options)

// WithClock sets the time source used for the overdue check (default: time.Now).
func WithClock(clock func() time.Time) Option {
	return func(o *Options) { o.clock = clock }
}

// WithLogger sets the logger receiving per-stage debug entries.
func WithLogger(logger log.FieldLogger) Option {
	return func(o *Options) { o.logger = logger }
}

// WithActivityFilter overrides the expression selecting activity rows
// (default: the preferences' activity_filter, then DefaultActivityFilter).
func WithActivityFilter(expression string) Option {
	return func(o *Options) { o.activityFilter = expression }
}

// WithBaseRowHeight sets the height of one text line (default: 15).
func WithBaseRowHeight(height float64) Option {
	return func(o *Options) { o.baseRowHeight = height }
}

// WithSurface renders onto s instead of a new excelize workbook. The sheet
// name passed to s is empty, meaning its current sheet.
func WithSurface(s Surface) Option {
	return func(o *Options) { o.surface = s }
}
