package patch

import "time"

const (
	// DefaultTool is the name recorded in annotation comments.
	DefaultTool = "propedit"

	// DefaultTimeLayout renders annotation timestamps.
	DefaultTimeLayout = "2006-01-02 15:04:05.000000"
)

type config struct {
	now        func() time.Time
	formatTime func(time.Time) string
	tool       string
}

func newConfig(opts ...Option) *config {
	c := &config{
		now: time.Now,
		formatTime: func(t time.Time) string {
			return t.Format(DefaultTimeLayout)
		},
		tool: DefaultTool,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Option configures [Apply].
type Option func(*config)

// WithClock sets the clock read once per [Apply] call.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithTimeFormat sets how the run timestamp is rendered in comments.
func WithTimeFormat(format func(time.Time) string) Option {
	return func(c *config) {
		if format != nil {
			c.formatTime = format
		}
	}
}

// WithTool sets the tool name recorded in comments.
func WithTool(name string) Option {
	return func(c *config) {
		if name != "" {
			c.tool = name
		}
	}
}
