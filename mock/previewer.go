package mock

import (
	"context"

	"github.com/fwojciec/tint"
)

// Compile-time interface verification.
var _ tint.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of tint.Previewer.
type Previewer struct {
	PreviewFn func(ctx context.Context, theme *tint.Theme) error
}

func (p *Previewer) Preview(ctx context.Context, theme *tint.Theme) error {
	return p.PreviewFn(ctx, theme)
}
