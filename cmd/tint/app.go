package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/tint"
	"github.com/fwojciec/tint/config"
	"github.com/fwojciec/tint/manifest"
)

// ErrVerificationFailed is returned when a theme does not match the
// digest recorded for it in the manifest.
var ErrVerificationFailed = errors.New("verification failed")

// sgrReset clears all SGR attributes after a swatch.
const sgrReset = "\x1b[0m"

// BatchVerifier verifies every manifest entry concurrently.
type BatchVerifier interface {
	VerifyAll(ctx context.Context, manifestPath string, workers int) ([]manifest.Result, error)
}

// App encapsulates the application logic for testing.
type App struct {
	Config    config.Config
	Loader    tint.Loader
	Verifier  tint.Verifier
	Batch     BatchVerifier
	Previewer tint.Previewer
	Out       io.Writer
	Logger    *slog.Logger

	// Color enables swatch rendering in Show output.
	Color bool
}

// themeName resolves an empty name to the configured default theme.
func (a *App) themeName(name string) string {
	if name == "" {
		return a.Config.DefaultTheme
	}
	return name
}

// Verify checks one theme against the manifest, or every manifest
// entry when all is set. It prints one line per outcome and returns
// ErrVerificationFailed when anything failed.
func (a *App) Verify(ctx context.Context, name string, all bool, workers int) error {
	manifestPath := a.Config.ManifestPath()

	if all {
		results, err := a.Batch.VerifyAll(ctx, manifestPath, workers)
		if err != nil {
			return err
		}

		failed := 0
		for _, res := range results {
			if res.OK {
				fmt.Fprintf(a.Out, "ok      %s\n", res.Name)
				continue
			}
			failed++
			fmt.Fprintf(a.Out, "FAILED  %s\n", res.Name)
			if a.Logger != nil {
				a.Logger.Warn("Theme failed verification", "theme", res.Name, "detail", res.Detail)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d themes: %w", failed, len(results), ErrVerificationFailed)
		}
		return nil
	}

	name = a.themeName(name)
	ok, err := a.Verifier.Verify(a.Config.ThemePath(name), manifestPath)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.Out, "FAILED  %s\n", name)
		return fmt.Errorf("theme %s: %w", name, ErrVerificationFailed)
	}
	fmt.Fprintf(a.Out, "ok      %s\n", name)
	return nil
}

// Show prints the theme's attributes, one per line with the name
// column padded. With Color set, values that parse as colors render as
// swatches: the value text over its own color, with the configured
// scheme's default foreground on top.
func (a *App) Show(name string, verify bool) error {
	name = a.themeName(name)
	themePath := a.Config.ThemePath(name)

	if verify {
		ok, err := a.Verifier.Verify(themePath, a.Config.ManifestPath())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("theme %s: %w", name, ErrVerificationFailed)
		}
	}

	var scheme tint.Scheme
	if a.Color {
		var err error
		scheme, err = tint.ParseScheme(a.Config.Scheme)
		if err != nil {
			return fmt.Errorf("config scheme: %w", err)
		}
	}

	theme, err := a.Loader.Load(themePath)
	if err != nil {
		return err
	}

	attrs := theme.Attributes()
	nameWidth := 0
	for _, attr := range attrs {
		if len(attr.Name) > nameWidth {
			nameWidth = len(attr.Name)
		}
	}

	for _, attr := range attrs {
		value := attr.Value
		if a.Color {
			if rendered, ok := swatch(scheme, attr.Value); ok {
				value = rendered
			}
		}
		fmt.Fprintf(a.Out, "%-*s  %s\n", nameWidth, attr.Name, value)
	}
	return nil
}

// swatch renders a color value over its own color, reporting false for
// values that do not parse as colors.
func swatch(scheme tint.Scheme, value string) (string, bool) {
	rgb, err := tint.ParseColor(value)
	if err != nil {
		return "", false
	}

	seq, err := tint.NewBuilder().SetScheme(scheme).SetBackgroundRGB(rgb).Build()
	if err != nil {
		return "", false
	}
	return seq + " " + value + " " + sgrReset, true
}

// Hash prints a manifest line for each given file.
func (a *App) Hash(paths []string) error {
	for _, path := range paths {
		digest, err := manifest.HashFile(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "%s  %s\n", filepath.Base(path), digest)
	}
	return nil
}

// Preview opens the interactive theme preview.
func (a *App) Preview(ctx context.Context, name string, verify bool) error {
	name = a.themeName(name)
	themePath := a.Config.ThemePath(name)

	if verify {
		ok, err := a.Verifier.Verify(themePath, a.Config.ManifestPath())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("theme %s: %w", name, ErrVerificationFailed)
		}
	}

	theme, err := a.Loader.Load(themePath)
	if err != nil {
		return err
	}
	return a.Previewer.Preview(ctx, theme)
}
