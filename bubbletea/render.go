package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/tint"
	tintgloss "github.com/fwojciec/tint/lipgloss"
)

// renderConfig holds everything needed to render the attribute list and
// the source view.
type renderConfig struct {
	attrs     []tint.Attribute
	source    string
	styles    tint.ChromeStyles
	renderer  *lipgloss.Renderer
	tokenizer tint.Tokenizer
	width     int
	selected  int
}

// selectionMarker prefixes the selected attribute row.
const selectionMarker = "▸ "

// renderAttributes renders one row per theme attribute: a selection
// marker, the name padded to a shared column width, the raw value, and
// a swatch when the value parses as a color.
func renderAttributes(cfg renderConfig) string {
	if len(cfg.attrs) == 0 {
		return styleFromColorPair(cfg.styles.Comment, cfg.renderer).Render("(no attributes)")
	}

	nameStyle := styleFromColorPair(cfg.styles.AttrName, cfg.renderer)
	valueStyle := styleFromColorPair(cfg.styles.AttrValue, cfg.renderer)
	nameWidth := maxNameWidth(cfg.attrs)

	var sb strings.Builder
	for i, attr := range cfg.attrs {
		marker := "  "
		if i == cfg.selected {
			marker = selectionMarker
		}
		sb.WriteString(marker)
		sb.WriteString(nameStyle.Render(padLine(attr.Name, nameWidth)))
		sb.WriteString("  ")
		if swatch, ok := tintgloss.SwatchStyle(cfg.renderer, cfg.styles.Swatch, attr.Value); ok {
			sb.WriteString(swatch.Render(" " + attr.Value + " "))
		} else {
			sb.WriteString(valueStyle.Render(attr.Value))
		}
		if i < len(cfg.attrs)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderSource renders the raw theme source with syntax highlighting.
// Lines are tokenized individually; the theme format is line-oriented,
// so no construct spans lines. Falls back to plain text when no
// tokenizer is configured.
func renderSource(cfg renderConfig) string {
	if cfg.source == "" {
		return styleFromColorPair(cfg.styles.Comment, cfg.renderer).Render("(source unavailable)")
	}

	lines := strings.Split(strings.TrimSuffix(cfg.source, "\n"), "\n")
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = renderSourceLine(ExpandTabs(line, 0), cfg)
	}
	return strings.Join(rendered, "\n")
}

// renderSourceLine renders a single source line through the tokenizer.
// Lexers may append a newline to unterminated input; line breaks come
// from the join in renderSource, so token text is kept newline-free.
func renderSourceLine(line string, cfg renderConfig) string {
	if cfg.tokenizer == nil {
		return line
	}

	tokens := cfg.tokenizer.Tokenize(line)
	if tokens == nil {
		return line
	}

	var sb strings.Builder
	for _, tok := range tokens {
		text := strings.TrimSuffix(tok.Text, "\n")
		if text == "" {
			continue
		}
		sb.WriteString(styleFromToken(tok.Style, cfg.renderer).Render(text))
	}
	return sb.String()
}

// styleFromColorPair builds a lipgloss style from a color pair.
// Empty colors are left unset so the terminal default shows through.
func styleFromColorPair(cp tint.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	style := newStyle(renderer)
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// styleFromToken builds a lipgloss style for a syntax token.
func styleFromToken(s tint.Style, renderer *lipgloss.Renderer) lipgloss.Style {
	style := newStyle(renderer)
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	return style
}

// newStyle creates a lipgloss style bound to the given renderer,
// falling back to the default renderer when nil.
func newStyle(renderer *lipgloss.Renderer) lipgloss.Style {
	if renderer != nil {
		return renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// padLine pads a line with spaces to the given display width.
func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

// maxNameWidth returns the display width of the widest attribute name.
func maxNameWidth(attrs []tint.Attribute) int {
	width := 0
	for _, attr := range attrs {
		if w := lipgloss.Width(attr.Name); w > width {
			width = w
		}
	}
	return width
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
