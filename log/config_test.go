package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fixedTime is the clock reading used throughout the package tests.
var fixedTime = time.Date(2026, time.October, 17, 14, 3, 27, 918273000, time.UTC)

func fixedClock() time.Time { return fixedTime }

func TestConfig_Defaults(t *testing.T) {
	c := makeConfig()

	if c.extension != DefaultExtension {
		t.Errorf("expected extension %q, got %q", DefaultExtension, c.extension)
	}

	if c.prefix != DefaultPrefix {
		t.Errorf("expected prefix %q, got %q", DefaultPrefix, c.prefix)
	}

	if c.timeLayout != DefaultTimeLayout {
		t.Errorf("expected time layout %q, got %q", DefaultTimeLayout, c.timeLayout)
	}

	if !c.appendContext {
		t.Error("expected context appending enabled by default")
	}

	if c.json {
		t.Error("expected JSON mode disabled by default")
	}

	if c.filename != "" || c.template != "" || c.filter != "" {
		t.Error("expected filename, template, and filter unset by default")
	}
}

func TestConfig_Options_Override(t *testing.T) {
	c := makeConfig(
		WithExtension(".log"),
		WithPrefix("error_"),
		WithFilename("fixed"),
		WithTemplate("{message}"),
		WithAppendContext(false),
		WithJSON(true),
		WithFlushFrequency(5),
		WithFilter("  priority < 3  "),
	)

	if c.extension != "log" {
		t.Errorf("expected extension log, got %q", c.extension)
	}

	if c.prefix != "error_" {
		t.Errorf("expected prefix error_, got %q", c.prefix)
	}

	if c.filename != "fixed" {
		t.Errorf("expected filename fixed, got %q", c.filename)
	}

	if c.template != "{message}" {
		t.Errorf("expected template, got %q", c.template)
	}

	if c.appendContext || !c.json {
		t.Error("expected appendContext=false json=true")
	}

	if c.flushFrequency != 5 {
		t.Errorf("expected flushFrequency 5, got %d", c.flushFrequency)
	}

	if c.filter != "priority < 3" {
		t.Errorf("expected trimmed filter, got %q", c.filter)
	}
}

func TestConfig_TimeLayout(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		expected string
	}{
		{"default", DefaultTimeLayout, "2026-10-17 14:03:27.918273"},
		{"rfc3339 named", "RFC3339", "2026-10-17T14:03:27Z"},
		{"micro named", "micro", "Oct 17 14:03:27.918273"},
		{"custom", "15:04", "14:03"},
		{"none", "none", ""},
		{"empty", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := makeConfig(WithClock(fixedClock), WithTimeLayout(tt.layout))
			if got := c.timestamp(); got != tt.expected {
				t.Errorf("timestamp() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConfig_TimeLayout_PadsHour(t *testing.T) {
	morning := time.Date(2026, time.March, 4, 9, 5, 3, 0, time.UTC)

	c := makeConfig(WithClock(func() time.Time { return morning }))
	if got := c.timestamp(); got != "2026-03-04 09:05:03.000000" {
		t.Errorf("timestamp() = %q", got)
	}
}

func TestOptions_Apply(t *testing.T) {
	prefix := ""
	appendContext := false
	asJSON := true

	c := makeConfig(Options{
		Extension:     "log",
		DateFormat:    "15:04",
		Prefix:        &prefix,
		LogFormat:     "{level}: {message}",
		AppendContext: &appendContext,
		JSON:          &asJSON,
		Filter:        "priority == 0",
	}.Apply()...)

	if c.extension != "log" || c.timeLayout != "15:04" || c.prefix != "" {
		t.Errorf("unexpected config: %+v", c)
	}

	if c.template != "{level}: {message}" || c.appendContext || !c.json {
		t.Errorf("unexpected config: %+v", c)
	}

	if c.filter != "priority == 0" {
		t.Errorf("unexpected filter %q", c.filter)
	}

	// Zero values keep the defaults.
	d := makeConfig(Options{}.Apply()...)
	if d.prefix != DefaultPrefix || !d.appendContext || d.extension != DefaultExtension {
		t.Errorf("zero Options changed defaults: %+v", d)
	}
}

func TestResolvePath(t *testing.T) {
	sep := string(os.PathSeparator)

	tests := []struct {
		name     string
		dir      string
		opts     []Option
		expected string
	}{
		{
			name:     "derived",
			dir:      "/var/log/app",
			expected: "/var/log/app" + sep + "log_2026-10-17.txt",
		},
		{
			name:     "trailing separators",
			dir:      "/var/log/app//",
			expected: "/var/log/app" + sep + "log_2026-10-17.txt",
		},
		{
			name:     "prefix and extension",
			dir:      "logs",
			opts:     []Option{WithPrefix("error_"), WithExtension("log")},
			expected: "logs" + sep + "error_2026-10-17.log",
		},
		{
			name:     "fixed filename with log suffix",
			dir:      "logs",
			opts:     []Option{WithFilename("app.log"), WithExtension("json")},
			expected: "logs" + sep + "app.log",
		},
		{
			name:     "fixed filename with txt suffix",
			dir:      "logs",
			opts:     []Option{WithFilename("app.txt")},
			expected: "logs" + sep + "app.txt",
		},
		{
			name:     "fixed filename without suffix",
			dir:      "logs",
			opts:     []Option{WithFilename("app"), WithExtension("log")},
			expected: "logs" + sep + "app.log",
		},
		{
			name:     "fixed filename with inner suffix",
			dir:      "logs",
			opts:     []Option{WithFilename("app.log.old")},
			expected: "logs" + sep + "app.log.old.txt",
		},
		{
			name:     "root",
			dir:      sep,
			expected: sep + "log_2026-10-17.txt",
		},
		{
			name:     "stream",
			dir:      "stream://stdout",
			expected: "stream://stdout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithClock(fixedClock)}, tt.opts...)
			if got := ResolvePath(tt.dir, opts...); got != tt.expected {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.dir, got, tt.expected)
			}
		})
	}
}

func TestResolvePath_Today(t *testing.T) {
	dir := t.TempDir()
	today := time.Now().Format("2006-01-02")

	got := ResolvePath(dir, WithPrefix("P"), WithExtension("E"))
	if got != filepath.Join(dir, "P"+today+".E") {
		t.Errorf("unexpected path %q", got)
	}

	if !strings.HasPrefix(got, dir) {
		t.Errorf("path %q not under %q", got, dir)
	}
}
