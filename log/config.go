package log

import (
	"io"
	"strings"
	"time"
)

// FormatTime defines a function that formats a time.Time value as a string.
type FormatTime func(time.Time) string

const (
	// DefaultExtension is the extension appended to derived file names.
	DefaultExtension = "txt"

	// DefaultTimeLayout includes seconds and microseconds. The hour is
	// always two digits.
	DefaultTimeLayout = "2006-01-02 15:04:05.000000"

	// DefaultPrefix is prepended to derived file names.
	DefaultPrefix = "log_"

	// DefaultAppendContext enables the context dump below each line.
	DefaultAppendContext = true

	// DefaultJSON disables JSON encoding of messages.
	DefaultJSON = false
)

// dateLayout is the layout of the date embedded in derived file names.
const dateLayout = "2006-01-02"

// config holds the configuration options for a Logger.
// It is populated once by [New] and never modified afterward.
type config struct {
	output         io.Writer
	clock          func() time.Time
	formatTime     FormatTime
	extension      string
	timeLayout     string
	filename       string
	prefix         string
	template       string
	filter         string
	flushFrequency int
	appendContext  bool
	json           bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	var c config

	return apply(apply(c, WithDefaults()), opts...)
}

// now returns the current time from the configured clock.
func (c config) now() time.Time {
	if c.clock == nil {
		return time.Now()
	}

	return c.clock()
}

// timestamp formats the current time with the configured layout.
func (c config) timestamp() string {
	if c.formatTime == nil {
		return c.now().Format(DefaultTimeLayout)
	}

	return c.formatTime(c.now())
}

// WithDefaults returns a functional option that sets the default
// configuration.
func WithDefaults() Option {
	return func(c config) config {
		c.clock = time.Now
		c.extension = DefaultExtension
		c.timeLayout = DefaultTimeLayout
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.prefix = DefaultPrefix
		c.appendContext = DefaultAppendContext
		c.json = DefaultJSON

		return c
	}
}

// WithExtension returns a functional option that sets the extension of the
// log file. A leading dot is ignored.
func WithExtension(ext string) Option {
	return func(c config) config {
		c.extension = strings.TrimPrefix(ext, ".")

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format log timestamps.
//
// The layout string can be one of the named layouts from the [time] package
// (for example, "RFC3339" or "StampMicro"). Otherwise, it is passed verbatim
// to [time.Time.Format] and must use the reference time layout.
//
// If an empty string (after trimming whitespace) is provided, timestamps are
// rendered empty.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.timeLayout = layout
		c.formatTime = makeFormatTimeFunc(layout)

		return c
	}
}

// WithFilename returns a functional option that fixes the log file name
// instead of deriving it from the prefix and the current date.
func WithFilename(name string) Option {
	return func(c config) config {
		c.filename = name

		return c
	}
}

// WithPrefix returns a functional option that sets the prefix of derived
// log file names.
func WithPrefix(prefix string) Option {
	return func(c config) config {
		c.prefix = prefix

		return c
	}
}

// WithTemplate returns a functional option that sets a custom line template.
//
// The placeholders {date}, {level}, {level-padding}, {priority}, {context},
// and {message} are substituted. An empty template selects the default
// "[<timestamp>] [<level>] <message>" format.
func WithTemplate(template string) Option {
	return func(c config) config {
		c.template = template

		return c
	}
}

// WithAppendContext returns a functional option that controls whether the
// context is dumped below each line.
func WithAppendContext(enable bool) Option {
	return func(c config) config {
		c.appendContext = enable

		return c
	}
}

// WithJSON returns a functional option that controls whether messages are
// encoded as JSON before they are formatted.
func WithJSON(enable bool) Option {
	return func(c config) config {
		c.json = enable

		return c
	}
}

// WithFlushFrequency is accepted for compatibility with existing
// configurations. Every line is written synchronously regardless of n.
func WithFlushFrequency(n int) Option {
	return func(c config) config {
		c.flushFrequency = n

		return c
	}
}

// WithOutput returns a functional option that sets the writer used when the
// logger targets a stream instead of a file.
// If a nil writer is provided, the stream named by the directory is used.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		c.output = w

		return c
	}
}

// WithFilter returns a functional option that sets an expression each record
// must satisfy to be written. See [Record] for the available fields.
func WithFilter(expression string) Option {
	return func(c config) config {
		c.filter = strings.TrimSpace(expression)

		return c
	}
}

// WithClock returns a functional option that replaces the wall clock used
// for timestamps and derived file names.
func WithClock(now func() time.Time) Option {
	return func(c config) config {
		if now == nil {
			now = time.Now
		}

		c.clock = now

		return c
	}
}

// Options is a serializable form of the logger configuration, keyed the same
// way as configuration files.
// Empty strings and nil pointers leave the corresponding default in place.
type Options struct {
	Extension      string  `json:"extension,omitempty"      yaml:"extension,omitempty"`
	DateFormat     string  `json:"dateFormat,omitempty"     yaml:"dateFormat,omitempty"`
	Filename       string  `json:"filename,omitempty"       yaml:"filename,omitempty"`
	Prefix         *string `json:"prefix,omitempty"         yaml:"prefix,omitempty"`
	LogFormat      string  `json:"logFormat,omitempty"      yaml:"logFormat,omitempty"`
	AppendContext  *bool   `json:"appendContext,omitempty"  yaml:"appendContext,omitempty"`
	JSON           *bool   `json:"json,omitempty"           yaml:"json,omitempty"`
	FlushFrequency int     `json:"flushFrequency,omitempty" yaml:"flushFrequency,omitempty"`
	Filter         string  `json:"filter,omitempty"         yaml:"filter,omitempty"`
}

// Apply returns the functional options equivalent to o.
func (o Options) Apply() []Option {
	var opts []Option

	if o.Extension != "" {
		opts = append(opts, WithExtension(o.Extension))
	}

	if o.DateFormat != "" {
		opts = append(opts, WithTimeLayout(o.DateFormat))
	}

	if o.Filename != "" {
		opts = append(opts, WithFilename(o.Filename))
	}

	if o.Prefix != nil {
		opts = append(opts, WithPrefix(*o.Prefix))
	}

	if o.LogFormat != "" {
		opts = append(opts, WithTemplate(o.LogFormat))
	}

	if o.AppendContext != nil {
		opts = append(opts, WithAppendContext(*o.AppendContext))
	}

	if o.JSON != nil {
		opts = append(opts, WithJSON(*o.JSON))
	}

	if o.FlushFrequency != 0 {
		opts = append(opts, WithFlushFrequency(o.FlushFrequency))
	}

	if o.Filter != "" {
		opts = append(opts, WithFilter(o.Filter))
	}

	return opts
}

// timeLayout maps named layouts to their corresponding time.Time constants.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,

	"stamp": time.Stamp,
	"none":  "",

	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"millis":     time.StampMilli,
	"ms":         time.StampMilli,

	"stampmicro": time.StampMicro,
	"micro":      time.StampMicro,
	"micros":     time.StampMicro,
	"us":         time.StampMicro,

	"stampnano": time.StampNano,
	"nano":      time.StampNano,
	"nanos":     time.StampNano,
	"ns":        time.StampNano,
}

func makeFormatTimeFunc(layout string) FormatTime {
	// Trim whitespace only for inspection.
	// Custom layouts are used verbatim.
	trimmed := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if trimmed == "" {
		return func(time.Time) string { return "" }
	}

	if std, ok := timeLayout[trimmed]; ok {
		layout = std
	}

	return func(t time.Time) string { return t.Format(layout) }
}
