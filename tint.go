// Package tint provides domain types for verifying and rendering terminal themes.
package tint

import "context"

// Attribute is a single named value from a theme definition file.
// Values are opaque strings; consumers that need a color parse the
// value with ParseColor on demand.
type Attribute struct {
	Name  string
	Value string
}

// Theme is a parsed theme definition: an ordered list of named attributes.
// A Theme is immutable once loaded.
type Theme struct {
	Path string // File the theme was loaded from

	attrs []Attribute
}

// NewTheme constructs a Theme from a file path and its parsed attributes.
func NewTheme(path string, attrs []Attribute) *Theme {
	return &Theme{Path: path, attrs: attrs}
}

// Attributes returns the theme's attributes in definition order.
func (t *Theme) Attributes() []Attribute {
	return t.attrs
}

// Lookup returns the value of the first attribute with the given name
// and whether any attribute matched. Duplicate names are legal in theme
// files; later definitions are reachable only through Attributes.
func (t *Theme) Lookup(name string) (string, bool) {
	for _, a := range t.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Loader parses theme definition files.
type Loader interface {
	// Load parses the theme file at path into a Theme.
	Load(path string) (*Theme, error)
}

// Verifier checks theme files against a recorded manifest.
type Verifier interface {
	// Verify reports whether the file at themePath matches the digest
	// recorded for it in the manifest at manifestPath. Missing files,
	// unknown names and digest mismatches report false with a nil
	// error; only a malformed manifest fails the call itself.
	Verify(themePath, manifestPath string) (bool, error)
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}

// Previewer renders an interactive view of a theme.
type Previewer interface {
	// Preview displays the theme until the user quits or ctx is done.
	Preview(ctx context.Context, theme *Theme) error
}
