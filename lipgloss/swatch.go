package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/tint"
)

// SwatchStyle builds a style that renders sample text over a theme
// color value. The value may be any form tint.ParseColor accepts; it
// reports false when the value does not parse as a color, in which
// case callers should fall back to plain text. The swatch pair
// supplies the foreground so sample text stays readable over the
// sampled color.
// If renderer is nil, the default lipgloss renderer is used.
func SwatchStyle(renderer *lipgloss.Renderer, swatch tint.ColorPair, value string) (lipgloss.Style, bool) {
	rgb, err := tint.ParseColor(value)
	if err != nil {
		return lipgloss.Style{}, false
	}

	style := newStyle(renderer).Background(lipgloss.Color(rgb.Hex()))
	if swatch.Foreground != "" {
		style = style.Foreground(lipgloss.Color(swatch.Foreground))
	}
	return style, true
}

func newStyle(renderer *lipgloss.Renderer) lipgloss.Style {
	if renderer != nil {
		return renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}
