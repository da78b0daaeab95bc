package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFormat_DefaultBracketFormat(t *testing.T) {
	c := makeConfig(WithClock(fixedClock))

	line, err := c.format(LevelDebug, Text("This is a test"), nil)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}

	expected := "[2026-10-17 14:03:27.918273] [debug] This is a test\n"
	if line != expected {
		t.Errorf("format() = %q, want %q", line, expected)
	}
}

func TestFormat_Template(t *testing.T) {
	tests := []struct {
		name     string
		template string
		level    Level
		msg      Message
		ctx      Context
		opts     []Option
		expected string
	}{
		{
			name:     "level and message",
			template: "{level} - {message}",
			level:    LevelInfo,
			msg:      Text("hello"),
			expected: "INFO - hello",
		},
		{
			name:     "all placeholders",
			template: "{date} [{level}]{level-padding}({priority}) {message} {context}",
			level:    LevelWarning,
			msg:      Text("disk low"),
			ctx:      Context{"free": 12},
			opts:     []Option{WithAppendContext(false)},
			expected: "2026-10-17 14:03:27.918273 [WARNING]  (4) disk low {\"free\":12}",
		},
		{
			name:     "padding for longest level",
			template: "{level}{level-padding}|",
			level:    LevelEmergency,
			msg:      Text(""),
			expected: "EMERGENCY|",
		},
		{
			name:     "padding for shortest level",
			template: "{level}{level-padding}|",
			level:    LevelInfo,
			msg:      Text(""),
			expected: "INFO     |",
		},
		{
			name:     "empty context",
			template: "{message} {context}",
			level:    LevelInfo,
			msg:      Text("x"),
			expected: "x {}",
		},
		{
			name:     "unknown placeholders kept",
			template: "{{level}} {unknown} {message",
			level:    LevelError,
			msg:      Text("m"),
			expected: "{ERROR} {unknown} {message",
		},
		{
			name:     "substitutions not rescanned",
			template: "{message}|{level}",
			level:    LevelNotice,
			msg:      Text("{level}"),
			expected: "{level}|NOTICE",
		},
		{
			name:     "json quoted message",
			template: `{"level":"{level}","message":"{message}"}`,
			level:    LevelInfo,
			msg:      Value(map[string]any{"a": 1}),
			opts:     []Option{WithJSON(true)},
			expected: `{"level":"INFO","message":{"a":1}}`,
		},
		{
			name:     "json bare message",
			template: "{level} {message}",
			level:    LevelInfo,
			msg:      Value(map[string]any{"a": 1}),
			opts:     []Option{WithJSON(true)},
			expected: "INFO {message}",
		},
		{
			name:     "quoted message outside json mode",
			template: `msg="{message}"`,
			level:    LevelInfo,
			msg:      Text("hi"),
			expected: `msg="hi"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithClock(fixedClock), WithTemplate(tt.template)}, tt.opts...)
			c := makeConfig(opts...)

			line, err := c.format(tt.level, tt.msg, tt.ctx)
			if err != nil {
				t.Fatalf("format failed: %v", err)
			}

			if line != tt.expected+"\n" {
				t.Errorf("format() = %q, want %q", line, tt.expected+"\n")
			}
		})
	}
}

func TestFormat_JSONBracketFormat(t *testing.T) {
	c := makeConfig(WithClock(fixedClock), WithJSON(true))

	line, err := c.format(LevelInfo, Value(map[string]any{"a": 1}), nil)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}

	expected := "[2026-10-17 14:03:27.918273] [info] {\"a\":1}\n"
	if line != expected {
		t.Errorf("format() = %q, want %q", line, expected)
	}

	if strings.Contains(line, `\"`) {
		t.Error("payload must not be double encoded")
	}
}

func TestFormat_JSONNoHTMLEscape(t *testing.T) {
	c := makeConfig(WithTemplate(`"{message}"`), WithJSON(true))

	line, err := c.format(LevelInfo, Text("<a&b>"), nil)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}

	if line != "\"<a&b>\"\n" {
		t.Errorf("unexpected line %q", line)
	}
}

func TestFormat_JSONEncodeError(t *testing.T) {
	c := makeConfig(WithJSON(true))

	_, err := c.format(LevelInfo, Value(make(chan int)), nil)
	if !errors.Is(err, ErrEncode) {
		t.Errorf("expected ErrEncode, got %v", err)
	}
}

func TestFormat_AppendContext(t *testing.T) {
	c := makeConfig(WithClock(fixedClock))

	line, err := c.format(LevelInfo, Text("base"), Context{"k": "v"})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}

	expected := "[2026-10-17 14:03:27.918273] [info] base\n    k: v\n"
	if line != expected {
		t.Errorf("format() = %q, want %q", line, expected)
	}
}

func TestFormat_AppendContext_Nested(t *testing.T) {
	c := makeConfig(WithTemplate("{message}"))

	line, err := c.format(LevelInfo, Text("m"), Context{
		"user":  map[string]any{"id": 7, "name": "ann"},
		"err":   errors.New("boom"),
		"count": 3,
		"big":   json.Number("12345678901234567890"),
		"list":  []any{json.Number("1e400")},
	})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(line, "\n"), "\n")
	if lines[0] != "m" {
		t.Fatalf("unexpected first line %q", lines[0])
	}

	// Keys are sorted and every context line is indented.
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, contextIndent) {
			t.Errorf("context line %q not indented", l)
		}
	}

	body := strings.Join(lines[1:], "\n")
	for _, want := range []string{
		"    big: 12345678901234567890",
		"    count: 3",
		"        - 1e400",
		"    err: boom",
		"    user:",
		"        id: 7",
		"        name: ann",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("context dump missing %q:\n%s", want, body)
		}
	}

	if strings.Index(body, "count") > strings.Index(body, "err") ||
		strings.Index(body, "err") > strings.Index(body, "user") {
		t.Errorf("context keys not sorted:\n%s", body)
	}
}

func TestFormat_AppendContextDisabled(t *testing.T) {
	c := makeConfig(WithTemplate("{message}"), WithAppendContext(false))

	line, err := c.format(LevelInfo, Text("m"), Context{"k": "v"})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}

	if line != "m\n" {
		t.Errorf("unexpected line %q", line)
	}
}

func TestMessage(t *testing.T) {
	if !Text("a").IsText() || Value(1).IsText() {
		t.Error("unexpected message kind")
	}

	if !Value("s").IsText() {
		t.Error("string values should be text")
	}

	if got := Value([]int{1, 2}).String(); got != "[1 2]" {
		t.Errorf("unexpected text form %q", got)
	}

	payload, err := Value([]int{1, 2}).payload(true)
	if err != nil || payload != "[1,2]" {
		t.Errorf("payload = %q, %v", payload, err)
	}
}

func TestMerge(t *testing.T) {
	if merge() != nil || merge(nil, Context{}) != nil {
		t.Error("empty contexts should merge to nil")
	}

	got := merge(Context{"a": 1, "b": 1}, nil, Context{"b": 2})
	if len(got) != 2 || got["a"] != 1 || got["b"] != 2 {
		t.Errorf("unexpected merge result %v", got)
	}
}
