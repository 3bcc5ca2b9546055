package mock

import "github.com/fwojciec/tint"

// Compile-time interface verification.
var _ tint.Loader = (*Loader)(nil)

// Loader is a mock implementation of tint.Loader.
type Loader struct {
	LoadFn func(path string) (*tint.Theme, error)
}

func (l *Loader) Load(path string) (*tint.Theme, error) {
	return l.LoadFn(path)
}
