package tint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidScheme indicates a scheme value outside the known set.
var ErrInvalidScheme = errors.New("invalid scheme")

// Scheme selects the default color pair a Builder installs on SetScheme.
type Scheme int

// Known schemes.
const (
	SchemeDark Scheme = iota
	SchemeLight
)

// ParseScheme converts a scheme name ("dark" or "light") to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "dark":
		return SchemeDark, nil
	case "light":
		return SchemeLight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidScheme, name)
	}
}

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeDark:
		return "dark"
	case SchemeLight:
		return "light"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// colors returns the scheme's default foreground and background pair.
func (s Scheme) colors() (fg, bg RGB, err error) {
	switch s {
	case SchemeDark:
		return RGB{R: 0xe0, G: 0xe0, B: 0xe0}, RGB{R: 0x1e, G: 0x1e, B: 0x1e}, nil
	case SchemeLight:
		return RGB{R: 0x2e, G: 0x2e, B: 0x2e}, RGB{R: 0xf0, G: 0xf0, B: 0xf0}, nil
	default:
		return RGB{}, RGB{}, fmt.Errorf("%w: %s", ErrInvalidScheme, s)
	}
}

// SGR parameter tokens for text styles.
const (
	sgrBold           = "1"
	sgrItalic         = "3"
	sgrUnderline      = "4"
	sgrBoldReset      = "22"
	sgrItalicReset    = "23"
	sgrUnderlineReset = "24"
)

// Builder accumulates style and color directives and renders them as a
// single ANSI SGR escape sequence. Setters return the receiver so calls
// chain; the first setter error is retained and surfaces from Build. A
// Builder is not safe for concurrent use; create one per goroutine.
//
// A new Builder holds no colors: Build after only SetForegroundRGB emits
// a lone foreground token. SetScheme installs a scheme's default pair.
type Builder struct {
	styles   []string
	fg, bg   *RGB
	negative bool
	err      error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetBold appends the bold code, or its reset code when enabled is
// false. Repeated calls append additional tokens; they never replace a
// prior one.
func (b *Builder) SetBold(enabled bool) *Builder {
	return b.style(enabled, sgrBold, sgrBoldReset)
}

// SetItalic appends the italic code, or its reset code when enabled is false.
func (b *Builder) SetItalic(enabled bool) *Builder {
	return b.style(enabled, sgrItalic, sgrItalicReset)
}

// SetUnderline appends the underline code, or its reset code when enabled is false.
func (b *Builder) SetUnderline(enabled bool) *Builder {
	return b.style(enabled, sgrUnderline, sgrUnderlineReset)
}

func (b *Builder) style(enabled bool, on, off string) *Builder {
	if enabled {
		b.styles = append(b.styles, on)
	} else {
		b.styles = append(b.styles, off)
	}
	return b
}

// SetForeground parses a hex or HSL color string and stores it as the
// foreground. An unparsable string sets the builder's sticky error.
func (b *Builder) SetForeground(color string) *Builder {
	c, err := ParseColor(color)
	if err != nil {
		return b.fail(err)
	}
	b.fg = &c
	return b
}

// SetBackground parses a hex or HSL color string and stores it as the
// background. An unparsable string sets the builder's sticky error.
func (b *Builder) SetBackground(color string) *Builder {
	c, err := ParseColor(color)
	if err != nil {
		return b.fail(err)
	}
	b.bg = &c
	return b
}

// SetForegroundRGB stores c as the foreground.
func (b *Builder) SetForegroundRGB(c RGB) *Builder {
	b.fg = &c
	return b
}

// SetBackgroundRGB stores c as the background.
func (b *Builder) SetBackgroundRGB(c RGB) *Builder {
	b.bg = &c
	return b
}

// SetScheme resets both colors to the scheme's defaults, overwriting
// any previously set foreground or background. An unknown scheme sets
// the builder's sticky error.
func (b *Builder) SetScheme(s Scheme) *Builder {
	fg, bg, err := s.colors()
	if err != nil {
		return b.fail(err)
	}
	b.fg, b.bg = &fg, &bg
	return b
}

// SetNegative controls negative mode, which exchanges the foreground
// and background colors at render time. It has no immediate effect.
func (b *Builder) SetNegative(enabled bool) *Builder {
	b.negative = enabled
	return b
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Err returns the first setter error, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build renders the accumulated state as an escape sequence: the
// foreground token if a foreground is set, then the background token,
// then all style tokens in append order, joined by ";" and wrapped in
// ESC[...m. In negative mode the two colors exchange sides for the
// render only; stored state never changes, so repeated calls return
// identical output.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	fg, bg := b.fg, b.bg
	if b.negative {
		fg, bg = bg, fg
	}

	tokens := make([]string, 0, len(b.styles)+2)
	if fg != nil {
		tokens = append(tokens, fmt.Sprintf("38;2;%d;%d;%d", fg.R, fg.G, fg.B))
	}
	if bg != nil {
		tokens = append(tokens, fmt.Sprintf("48;2;%d;%d;%d", bg.R, bg.G, bg.B))
	}
	tokens = append(tokens, b.styles...)

	return "\x1b[" + strings.Join(tokens, ";") + "m", nil
}
