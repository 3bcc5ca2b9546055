// Package chroma provides theme source highlighting using the chroma library.
package chroma

import (
	"errors"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/tint"
)

// Compile-time interface verification.
var _ tint.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to tint styles.
type StyleFunc func(chromalib.TokenType) tint.Style

// Tokenizer extracts syntax tokens from theme sources using chroma.
// Theme files share their shape with INI files, so the INI lexer covers
// attribute names, values, comments, and section headers.
type Tokenizer struct {
	lexer     chromalib.Lexer
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromChrome to create a style function from tint.ChromeStyles.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	lexer := lexers.Get("ini")
	if lexer == nil {
		return nil, errors.New("chroma: ini lexer not registered")
	}

	// Coalesce for better performance with consecutive tokens of the same type
	return &Tokenizer{lexer: chromalib.Coalesce(lexer), styleFunc: styleFunc}, nil
}

// Tokenize splits theme source into syntax-highlighted tokens.
// Returns nil if the source cannot be lexed.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(source string) []tint.Token {
	if source == "" {
		return []tint.Token{}
	}

	iterator, err := t.lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []tint.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, tint.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	return tokens
}
