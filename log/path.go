package log

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// StreamScheme prefixes a directory argument that names a standard stream
// instead of a directory, for example "stream://stdout".
const StreamScheme = "stream://"

const (
	// dirMode is the mode of created log directories, before umask.
	dirMode os.FileMode = 0o777

	// fileMode is the mode of created log files, before umask.
	fileMode os.FileMode = 0o644
)

// logSuffixes are file name suffixes used verbatim by [WithFilename].
var logSuffixes = []string{".log", ".txt"}

// IsStream reports whether dir names a standard stream.
func IsStream(dir string) bool {
	return strings.HasPrefix(dir, StreamScheme)
}

// streamWriter returns the writer for a stream pseudo-path.
// Any name other than "stderr" selects standard output.
func streamWriter(path string) io.Writer {
	if strings.TrimPrefix(path, StreamScheme) == "stderr" {
		return os.Stderr
	}

	return os.Stdout
}

// trimDir strips trailing separators from dir, keeping a lone root.
func trimDir(dir string) string {
	trimmed := strings.TrimRight(dir, string(os.PathSeparator))
	if trimmed == "" && dir != "" {
		return string(os.PathSeparator)
	}

	return trimmed
}

// normalizeDir strips trailing separators from dir without breaking a bare
// stream scheme.
func normalizeDir(dir string) string {
	trimmed := trimDir(dir)
	if IsStream(dir) && !IsStream(trimmed) {
		return StreamScheme
	}

	return trimmed
}

// ResolvePath returns the log file path a [Logger] constructed with dir and
// opts would write to. It does not touch the file system.
//
// Stream pseudo-paths are returned unchanged.
func ResolvePath(dir string, opts ...Option) string {
	dir = normalizeDir(dir)
	if IsStream(dir) {
		return dir
	}

	return makeConfig(opts...).resolvePath(dir)
}

// resolvePath joins dir with the configured or derived file name.
func (c config) resolvePath(dir string) string {
	return strings.TrimSuffix(dir, string(os.PathSeparator)) +
		string(os.PathSeparator) + c.fileName()
}

// fileName returns the fixed file name, with the extension appended unless
// it already ends in a recognized suffix, or a name derived from the prefix
// and the current date.
func (c config) fileName() string {
	if c.filename != "" {
		for _, suffix := range logSuffixes {
			if strings.HasSuffix(c.filename, suffix) {
				return c.filename
			}
		}

		return c.filename + "." + c.extension
	}

	return c.prefix + c.now().Format(dateLayout) + "." + c.extension
}

// ensureDir creates dir and its parents if it does not exist.
func ensureDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	}

	err := os.MkdirAll(dir, dirMode)
	if err != nil {
		// Another process may have created it concurrently.
		if info, serr := os.Stat(dir); serr == nil && info.IsDir() {
			return nil
		}

		return ErrDirectoryCreate.
			With(slog.String("dir", dir)).
			Wrap(err)
	}

	return nil
}

// checkWritable verifies that path, if it exists, can be opened for append.
func checkWritable(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return ErrPermission.
			With(slog.String("file", path)).
			Wrap(err)
	}

	return f.Close()
}

// appendFile appends data to the file at path, creating it if needed.
func appendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, fileMode)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}
