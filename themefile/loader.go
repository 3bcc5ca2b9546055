// Package themefile parses theme definition files.
package themefile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/tint"
)

// Compile-time interface verification.
var _ tint.Loader = (*Loader)(nil)

// ErrFormat indicates a theme line that is not a "name = value" pair.
var ErrFormat = errors.New("malformed theme line")

// Loader loads theme definition files: one "name = value" attribute per
// line. Blank lines and lines starting with "#" or ";" are skipped.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the theme file at path. Attribute order is preserved and
// duplicate names are kept; Theme.Lookup resolves to the first. Values
// are opaque strings, so a non-color value is not an error here.
func (l *Loader) Load(path string) (*tint.Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var attrs []tint.Attribute
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		name, value, found := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrFormat, line)
		}

		attrs = append(attrs, tint.Attribute{Name: name, Value: strings.TrimSpace(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tint.NewTheme(path, attrs), nil
}
