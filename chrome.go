package tint

// ColorPair represents a foreground and background color combination.
// Colors are hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// ChromeStyles contains color pairs for the preview UI's own elements,
// as opposed to the colors of the theme being previewed.
type ChromeStyles struct {
	Title     ColorPair // Theme name and path in the header
	AttrName  ColorPair // Attribute name column
	AttrValue ColorPair // Attribute value column
	Swatch    ColorPair // Sample text inside color swatches
	Comment   ColorPair // Comment lines in the source view
	Status    ColorPair // Help line at the bottom
}

// Chrome provides styles for the preview UI.
// Different implementations can provide light/dark variants.
type Chrome interface {
	Styles() ChromeStyles
}
