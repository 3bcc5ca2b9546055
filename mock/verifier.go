package mock

import "github.com/fwojciec/tint"

// Compile-time interface verification.
var _ tint.Verifier = (*Verifier)(nil)

// Verifier is a mock implementation of tint.Verifier.
type Verifier struct {
	VerifyFn func(themePath, manifestPath string) (bool, error)
}

func (v *Verifier) Verify(themePath, manifestPath string) (bool, error) {
	return v.VerifyFn(themePath, manifestPath)
}
