package log

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// levelColumn is the width {level-padding} pads level names to.
const levelColumn = 9

// contextIndent prefixes every line of the context dump.
const contextIndent = "    "

// quotedMessage is the placeholder replaced, quotes included, in JSON mode.
const quotedMessage = `"{message}"`

// format renders a complete log line, including the trailing newline.
func (c config) format(level Level, msg Message, ctx Context) (string, error) {
	payload, err := msg.payload(c.json)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	if c.template != "" {
		err = c.expand(&sb, level, payload, ctx)
		if err != nil {
			return "", err
		}
	} else {
		sb.WriteByte('[')
		sb.WriteString(c.timestamp())
		sb.WriteString("] [")
		sb.WriteString(level.String())
		sb.WriteString("] ")
		sb.WriteString(payload)
	}

	if c.appendContext && len(ctx) > 0 {
		dump, err := dumpContext(ctx)
		if err != nil {
			return "", err
		}

		sb.WriteByte('\n')
		sb.WriteString(indent(dump, contextIndent))
	}

	sb.WriteByte('\n')

	return sb.String(), nil
}

// expand writes the configured template to sb in a single pass, substituting
// each recognized placeholder. Substituted text is never rescanned, and
// unrecognized placeholders are copied verbatim.
func (c config) expand(
	sb *strings.Builder,
	level Level,
	payload string,
	ctx Context,
) error {
	t := c.template

	for i := 0; i < len(t); {
		if c.json && strings.HasPrefix(t[i:], quotedMessage) {
			sb.WriteString(payload)

			i += len(quotedMessage)

			continue
		}

		if t[i] == '{' {
			if end := strings.IndexByte(t[i+1:], '}'); end >= 0 {
				value, ok, err := c.placeholder(t[i+1:i+1+end], level, payload, ctx)
				if err != nil {
					return err
				}

				if ok {
					sb.WriteString(value)

					i += end + 2

					continue
				}
			}
		}

		sb.WriteByte(t[i])
		i++
	}

	return nil
}

// placeholder returns the substitution for the named placeholder, or false
// if the name is not recognized.
func (c config) placeholder(
	name string,
	level Level,
	payload string,
	ctx Context,
) (string, bool, error) {
	switch name {
	case "date":
		return c.timestamp(), true, nil

	case "level":
		return strings.ToUpper(level.String()), true, nil

	case "level-padding":
		return strings.Repeat(" ", max(0, levelColumn-len(level.String()))), true, nil

	case "priority":
		return strconv.Itoa(level.Priority()), true, nil

	case "context":
		if ctx == nil {
			ctx = Context{}
		}

		s, err := encodeJSON(ctx)
		if err != nil {
			return "", false, err
		}

		return s, true, nil

	case "message":
		// JSON mode substitutes only the quoted form.
		if c.json {
			return "", false, nil
		}

		return payload, true, nil

	default:
		return "", false, nil
	}
}

// dumpContext renders ctx as a YAML block, one top-level entry per key in
// sorted order.
func dumpContext(ctx Context) (string, error) {
	items := make(yaml.MapSlice, 0, len(ctx))

	for _, key := range ctx.keys() {
		items = append(items, yaml.MapItem{Key: key, Value: plain(ctx[key])})
	}

	data, err := yaml.MarshalWithOptions(items,
		yaml.Indent(len(contextIndent)),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return "", ErrEncode.Wrap(err)
	}

	return strings.TrimRight(string(data), "\n"), nil
}

// plain converts values the YAML encoder would misrender: errors become
// their text and JSON numbers keep their original digits.
func plain(v any) any {
	switch t := v.(type) {
	case error:
		return t.Error()

	case json.Number:
		return yaml.RawMessage(t)

	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = plain(e)
		}

		return m

	case []any:
		a := make([]any, len(t))
		for i, e := range t {
			a[i] = plain(e)
		}

		return a
	}

	return v
}

// indent prefixes every line of s with prefix.
func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
