//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the filelog module embedded at build
// time. It is printed by the CLI when users pass the --version flag.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "filelog"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Append leveled log lines to dated files"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}

// String returns the author as "Name <Email>", omitting empty parts.
func (a AuthorInfo) String() string {
	switch {
	case a.Email == "":
		return a.Name
	case a.Name == "":
		return "<" + a.Email + ">"
	default:
		return a.Name + " <" + a.Email + ">"
	}
}

// Signature returns the name, version, and authors on one line, as printed
// by --version.
func Signature() string {
	authors := make([]string, len(Author))
	for i, a := range Author {
		authors[i] = a.String()
	}

	return Name + " " + strings.TrimSpace(Version) +
		" (" + strings.Join(authors, ", ") + ")"
}
