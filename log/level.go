package log

//go:generate go tool stringer --linecomment --type Level --output level_string.go

import (
	"iter"
	"log/slog"
	"strings"
)

// Level represents the severity of a log message.
// Lower values are more severe.
type Level int

const (
	LevelEmergency Level = iota // emergency
	LevelAlert                  // alert
	LevelCritical               // critical
	LevelError                  // error
	LevelWarning                // warning
	LevelNotice                 // notice
	LevelInfo                   // info
	LevelDebug                  // debug
)

// DefaultLevel is the default severity threshold.
const DefaultLevel = LevelDebug

// levelAlias maps accepted spellings to their level.
var levelAlias = map[string]Level{
	"emergency": LevelEmergency,
	"emerg":     LevelEmergency,
	"alert":     LevelAlert,
	"critical":  LevelCritical,
	"crit":      LevelCritical,
	"error":     LevelError,
	"err":       LevelError,
	"warning":   LevelWarning,
	"warn":      LevelWarning,
	"notice":    LevelNotice,
	"info":      LevelInfo,
	"debug":     LevelDebug,
}

// Levels returns an iterator over the canonical names of all levels, from
// most to least severe.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for level := LevelEmergency; level <= LevelDebug; level++ {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a level name, ignoring case and surrounding whitespace.
// The canonical names and the aliases "emerg", "crit", "err", and "warn" are
// recognized.
func ParseLevel(s string) (Level, error) {
	level, ok := levelAlias[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return DefaultLevel, ErrLevel.With(slog.String("level", s))
	}

	return level, nil
}

// Priority returns the numeric rank of the level.
func (l Level) Priority() int { return int(l) }

// Valid reports whether l is one of the eight defined levels.
func (l Level) Valid() bool { return l >= LevelEmergency && l <= LevelDebug }

// Enabled reports whether a message at level l passes the given threshold.
func (l Level) Enabled(threshold Level) bool {
	return l.Priority() <= threshold.Priority()
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = level

	return nil
}

// fromSlog maps a [slog.Level] onto the closest severity.
func fromSlog(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarning
	case level >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}
