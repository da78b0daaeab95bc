package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/filelog/log"
	"github.com/ardnew/filelog/pkg"
)

const viewFixture = `[2026-10-17 14:03:27.918273] [debug] starting
[2026-10-17 14:03:27.918274] [error] connection refused
    host: db.internal
[2026-10-17 14:03:27.918275] [info] retrying
NOTICE   | template line
no severity here
`

func writeFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte(viewFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestViewRun(t *testing.T) {
	path := writeFixture(t)

	tests := []struct {
		name string
		view View
		want []string
	}{
		{
			name: "all",
			view: View{Min: log.LevelDebug},
			want: strings.Split(strings.TrimSuffix(viewFixture, "\n"), "\n"),
		},
		{
			name: "min_warning",
			view: View{Min: log.LevelWarning},
			want: []string{
				"[2026-10-17 14:03:27.918274] [error] connection refused",
				"    host: db.internal",
				"no severity here",
			},
		},
		{
			name: "min_notice",
			view: View{Min: log.LevelNotice},
			want: []string{
				"[2026-10-17 14:03:27.918274] [error] connection refused",
				"    host: db.internal",
				"NOTICE   | template line",
				"no severity here",
			},
		},
		{
			name: "match",
			view: View{Min: log.LevelDebug, Match: "retry"},
			want: []string{"[2026-10-17 14:03:27.918275] [info] retrying"},
		},
		{
			name: "match_context",
			view: View{Min: log.LevelDebug, Match: "internal"},
			want: []string{
				"[2026-10-17 14:03:27.918274] [error] connection refused",
				"    host: db.internal",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.view.File = path
			tt.view.Color = "never"

			if err := tt.view.Run(WithStdout(context.Background(), &buf)); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			want := strings.Join(tt.want, "\n") + "\n"
			if buf.String() != want {
				t.Errorf("unexpected output:\n got %q\nwant %q", buf.String(), want)
			}
		})
	}
}

func TestViewRun_Color(t *testing.T) {
	var buf bytes.Buffer

	v := View{File: writeFixture(t), Min: log.LevelError, Color: "always"}
	if err := v.Run(WithStdout(context.Background(), &buf)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes in %q", out)
	}

	if !strings.Contains(out, "connection refused") {
		t.Errorf("expected message text in %q", out)
	}
}

func TestViewRun_DefaultPath(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "app.log"), []byte("[x] [alert] paged\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer

	ctx := WithTarget(context.Background(), Target{Dir: dir, Filename: "app.log"})
	ctx = WithStdout(ctx, &buf)

	v := View{Min: log.LevelDebug, Color: "never"}
	if err := v.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if buf.String() != "[x] [alert] paged\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestViewRun_Errors(t *testing.T) {
	stream := WithTarget(context.Background(), Target{Dir: "stream://stdout"})

	err := (&View{}).Run(stream)
	if !errors.Is(err, pkg.ErrNotAFile) {
		t.Errorf("expected ErrNotAFile, got %v", err)
	}

	err = (&View{File: filepath.Join(t.TempDir(), "missing.log")}).Run(context.Background())
	if !errors.Is(err, ErrReadLog) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrReadLog wrapping ErrNotExist, got %v", err)
	}
}
