package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/filelog/log"
	"github.com/ardnew/filelog/pkg"
)

// maxLineSize bounds a single line read by [View].
const maxLineSize = 1 << 20

// View prints a log file, coloring each record's severity.
type View struct {
	File  string    `arg:"" help:"Log file to print (default: the file the target flags resolve to)." optional:""`
	Match string    `       help:"Keep records fuzzily matching pattern."                               short:"m"`
	Min   log.Level `       help:"Keep records at or above this severity."                              default:"debug" placeholder:"LEVEL"`
	Color string    `       help:"Colorize severities."                                                 default:"auto"  enum:"auto,always,never"`
}

// record is one log line plus its indented context lines.
type record struct {
	lines []string
	level log.Level
	known bool
	// span locates the severity name in lines[0].
	span [2]int
}

var levelPattern = sync.OnceValues(func() (*regexp.Regexp, *regexp.Regexp) {
	names := strings.Join(slices.Collect(log.Levels()), "|")

	return regexp.MustCompile(`(?i)\[(` + names + `)\]`),
		regexp.MustCompile(`(?i)\b(` + names + `)\b`)
})

// Run executes the view command.
func (v *View) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	path := v.File
	if path == "" {
		path = targetFrom(ctx).Path()
	}

	if log.IsStream(path) {
		return pkg.ErrNotAFile.Wrapf("%s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return ErrReadLog.With(slog.String("path", path)).Wrap(err)
	}
	defer file.Close()

	records, err := readRecords(file)
	if err != nil {
		return ErrReadLog.With(slog.String("path", path)).Wrap(err)
	}

	records = v.filter(records)

	out, _ := stdoutFrom(ctx)

	slog.DebugContext(ctx, "view",
		slog.String("path", path),
		slog.Int("records", len(records)),
	)

	return v.render(out, records)
}

// readRecords splits r into records. Lines indented with the context prefix,
// and lines before the first recognizable record, attach to the previous
// record.
func readRecords(r io.Reader) ([]record, error) {
	bracket, bare := levelPattern()

	var records []record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()

		if len(records) > 0 && (line == "" || strings.HasPrefix(line, " ")) {
			last := &records[len(records)-1]
			last.lines = append(last.lines, line)

			continue
		}

		rec := record{lines: []string{line}}

		loc := bracket.FindStringSubmatchIndex(line)
		if loc == nil {
			loc = bare.FindStringSubmatchIndex(line)
		}

		if loc != nil {
			level, err := log.ParseLevel(line[loc[2]:loc[3]])
			if err == nil {
				rec.level, rec.known = level, true
				rec.span = [2]int{loc[2], loc[3]}
			}
		}

		records = append(records, rec)
	}

	return records, scanner.Err()
}

// filter drops records below the minimum severity and, when a pattern is
// set, records that do not fuzzily match it. Order is preserved.
func (v *View) filter(records []record) []record {
	records = slices.DeleteFunc(records, func(r record) bool {
		return r.known && !r.level.Enabled(v.Min)
	})

	if v.Match == "" {
		return records
	}

	text := make([]string, len(records))
	for i, r := range records {
		text[i] = strings.Join(r.lines, "\n")
	}

	keep := make([]bool, len(records))
	for _, m := range fuzzy.Find(v.Match, text) {
		keep[m.Index] = true
	}

	kept := records[:0]

	for i, r := range records {
		if keep[i] {
			kept = append(kept, r)
		}
	}

	return kept
}

func (v *View) render(w io.Writer, records []record) error {
	styles := v.styles(w)
	bw := bufio.NewWriter(w)

	for _, r := range records {
		first := r.lines[0]
		if r.known {
			first = first[:r.span[0]] +
				styles[r.level].Render(first[r.span[0]:r.span[1]]) +
				first[r.span[1]:]
		}

		bw.WriteString(first)
		bw.WriteByte('\n')

		for _, line := range r.lines[1:] {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// styles returns the severity styles for output written to w.
func (v *View) styles(w io.Writer) map[log.Level]lipgloss.Style {
	r := lipgloss.NewRenderer(w)

	switch v.Color {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}

	color := map[log.Level]string{
		log.LevelEmergency: "201",
		log.LevelAlert:     "197",
		log.LevelCritical:  "196",
		log.LevelError:     "160",
		log.LevelWarning:   "214",
		log.LevelNotice:    "45",
		log.LevelInfo:      "42",
		log.LevelDebug:     "245",
	}

	styles := make(map[log.Level]lipgloss.Style, len(color))

	for level, c := range color {
		s := r.NewStyle().Foreground(lipgloss.Color(c))
		if level <= log.LevelCritical {
			s = s.Bold(true)
		}

		styles[level] = s
	}

	return styles
}
