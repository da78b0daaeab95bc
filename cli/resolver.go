package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/filelog/pkg"
)

// resolve is a [kong.ConfigurationLoader] that parses a YAML configuration
// file into flag values.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// Keys are long flag names, with hyphens or underscores:
//
//	threshold: notice
//	append_context: false
//	log-level: debug
//
// Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	var raw map[string]any

	err = yaml.Unmarshal(buf, &raw)
	if err != nil {
		return nil, pkg.ErrParse.Wrap(err)
	}

	cfg := make(config, len(raw))

	for key, val := range raw {
		cfg[strings.ReplaceAll(key, "_", "-")] = scalar(val)
	}

	return cfg, nil
}

// config implements [kong.Resolver] for YAML configuration files.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Not found returns nil to let Kong use defaults
	return r[strings.ReplaceAll(flag.Name, "_", "-")], nil
}

// scalar converts numbers to strings, which Kong requires for parsing.
func scalar(val any) any {
	switch v := val.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return v
	}
}
