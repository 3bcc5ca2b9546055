package tint

// Token represents a highlighted segment of theme-file source.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply (color, bold)
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Tokenizer extracts highlighted tokens from theme-file source.
type Tokenizer interface {
	// Tokenize splits theme-file source into styled tokens.
	// Returns nil if the source cannot be lexed.
	Tokenize(source string) []Token
}
