package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Message is the primary payload of a log call. It is either plain text,
// created with [Text], or an arbitrary structured value, created with [Value].
type Message struct {
	value any
	text  string
	kind  messageKind
}

type messageKind uint8

const (
	kindText messageKind = iota
	kindValue
)

// Text returns a [Message] holding plain text.
func Text(s string) Message { return Message{text: s, kind: kindText} }

// Value returns a [Message] holding a structured value.
// In JSON mode the value is encoded as JSON; otherwise it is formatted with
// the %v verb.
func Value(v any) Message {
	if s, ok := v.(string); ok {
		return Text(s)
	}

	return Message{value: v, kind: kindValue}
}

// IsText reports whether m holds plain text.
func (m Message) IsText() bool { return m.kind == kindText }

// Any returns the underlying text or value.
func (m Message) Any() any {
	if m.kind == kindText {
		return m.text
	}

	return m.value
}

// String returns the text form of the message.
func (m Message) String() string {
	if m.kind == kindText {
		return m.text
	}

	return fmt.Sprint(m.value)
}

// payload renders the message for substitution into a line.
func (m Message) payload(asJSON bool) (string, error) {
	if !asJSON {
		return m.String(), nil
	}

	return encodeJSON(m.Any())
}

// Context holds structured key/value data attached to a log call.
type Context map[string]any

// merge combines contexts left to right. It returns nil if all are empty.
func merge(ctx ...Context) Context {
	var out Context

	for _, c := range ctx {
		if len(c) == 0 {
			continue
		}

		if out == nil {
			out = make(Context, len(c))
		}

		maps.Copy(out, c)
	}

	return out
}

// keys returns the context keys in sorted order.
func (c Context) keys() []string {
	return slices.Sorted(maps.Keys(c))
}

// encodeJSON encodes v as compact JSON without escaping HTML characters.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return "", ErrEncode.Wrap(err)
	}

	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
