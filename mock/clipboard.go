// Package mock provides test doubles for tint interfaces.
package mock

import "github.com/fwojciec/tint"

// Compile-time interface verification.
var _ tint.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of tint.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
