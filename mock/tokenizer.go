package mock

import "github.com/fwojciec/tint"

// Compile-time interface verification.
var _ tint.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of tint.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(source string) []tint.Token
}

func (t *Tokenizer) Tokenize(source string) []tint.Token {
	return t.TokenizeFn(source)
}
