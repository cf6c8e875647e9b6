// Package manifest loads a template manifest: a YAML file naming
// output paths, inline gen-flavored templates using ${name}
// placeholders, and a flat substitution map for each. It calls into
// package gen to do the actual rendering and never reimplements any of
// gen's whitespace or indentation rules — only placeholder scanning
// with source positions, which gen.SplitTemplate does not need and so
// does not provide.
package manifest

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"modernc.org/scanner"

	gen "github.com/sensmetry/gocodegen"
)

// Entry describes one generated file.
type Entry struct {
	Path     string            `yaml:"path"`
	Template string            `yaml:"template"`
	Values   map[string]string `yaml:"values"`
}

// Manifest is the top-level shape of a template manifest file.
type Manifest struct {
	Indent  string  `yaml:"indent"`
	EOL     string  `yaml:"eol"`
	Entries []Entry `yaml:"entries"`
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest: read %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "manifest: parse %s", path)
	}

	for i, e := range m.Entries {
		if strings.TrimSpace(e.Path) == "" {
			return nil, errors.Errorf("manifest: entry %d: path is required", i)
		}
	}

	return &m, nil
}

// Render expands entry.Template against entry.Values and returns the
// generated source text, terminated by exactly one trailing newline.
// path is used only for error positions; it need not match entry.Path.
func Render(path string, entry Entry) (string, error) {
	parts, names, err := splitPlaceholders(path, entry.Template)
	if err != nil {
		return "", errors.Wrapf(err, "manifest: %s", entry.Path)
	}

	substitutions := make([]gen.Generated, len(names))
	for i, name := range names {
		v, ok := entry.Values[name]
		if !ok {
			return "", errors.Errorf("manifest: %s: undefined placeholder %q", entry.Path, name)
		}
		substitutions[i] = v
	}

	return gen.ExpandToStringWithNL(parts, substitutions...), nil
}

// splitPlaceholders scans raw for ${name} markers exactly like
// gen.SplitTemplate, but additionally tracks line/column so a
// malformed marker can be reported with a source position. It reuses
// modernc.org/scanner's position-carrying error shape (already part of
// this module's dependency graph) rather than introduce a second,
// bespoke positioned-error type for the one call site that needs one.
func splitPlaceholders(file, raw string) (parts []string, names []string, err error) {
	var sb strings.Builder
	line, col := 1, 1

	advance := func(b byte) {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	i := 0
	for i < len(raw) {
		if raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{' {
			markerLine, markerCol := line, col
			closeIdx := strings.IndexByte(raw[i+2:], '}')
			if closeIdx == -1 {
				return nil, nil, scanner.ErrWithPosition{
					Pos: scanner.Position{Filename: file, Line: markerLine, Column: markerCol},
					Err: errors.New("unterminated ${ placeholder"),
				}
			}
			name := raw[i+2 : i+2+closeIdx]
			parts = append(parts, sb.String())
			names = append(names, name)
			sb.Reset()

			end := i + 2 + closeIdx + 1
			for ; i < end; i++ {
				advance(raw[i])
			}
			continue
		}
		sb.WriteByte(raw[i])
		advance(raw[i])
		i++
	}
	parts = append(parts, sb.String())
	return parts, names, nil
}
