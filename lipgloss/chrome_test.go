package lipgloss_test

import (
	"io"
	"testing"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/tint"
	"github.com/fwojciec/tint/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lg.Renderer {
	r := lg.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func TestDark(t *testing.T) {
	t.Parallel()

	t.Run("implements Chrome interface", func(t *testing.T) {
		t.Parallel()

		var _ tint.Chrome = lipgloss.Dark()
	})

	t.Run("returns styles for all preview elements", func(t *testing.T) {
		t.Parallel()

		styles := lipgloss.Dark().Styles()

		assert.NotEmpty(t, styles.Title.Foreground)
		assert.NotEmpty(t, styles.AttrName.Foreground)
		assert.NotEmpty(t, styles.AttrValue.Foreground)
		assert.NotEmpty(t, styles.Swatch.Foreground)
		assert.NotEmpty(t, styles.Comment.Foreground)
		assert.NotEmpty(t, styles.Status.Foreground)
	})
}

func TestLight(t *testing.T) {
	t.Parallel()

	t.Run("implements Chrome interface", func(t *testing.T) {
		t.Parallel()

		var _ tint.Chrome = lipgloss.Light()
	})

	t.Run("differs from dark chrome", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, lipgloss.Dark().Styles(), lipgloss.Light().Styles())
	})
}

func TestDetect(t *testing.T) {
	t.Parallel()

	styles := lipgloss.Detect().Styles()

	dark := lipgloss.Dark().Styles()
	light := lipgloss.Light().Styles()
	assert.True(t, styles == dark || styles == light)
}

func TestSwatchStyle(t *testing.T) {
	t.Parallel()

	t.Run("renders hex value as background", func(t *testing.T) {
		t.Parallel()

		style, ok := lipgloss.SwatchStyle(trueColorRenderer(), lipgloss.Dark().Styles().Swatch, "#ffcb00")

		require.True(t, ok)
		out := style.Render(" sample ")
		assert.Contains(t, out, "48;2;255;203;0")
		assert.Contains(t, out, "38;2;30;30;46") // dark chrome swatch text
	})

	t.Run("renders hsl value as background", func(t *testing.T) {
		t.Parallel()

		style, ok := lipgloss.SwatchStyle(trueColorRenderer(), lipgloss.Light().Styles().Swatch, "hsl(0,100%,50%)")

		require.True(t, ok)
		assert.Contains(t, style.Render(" sample "), "48;2;255;0;0")
	})

	t.Run("reports false for non-color values", func(t *testing.T) {
		t.Parallel()

		_, ok := lipgloss.SwatchStyle(trueColorRenderer(), lipgloss.Dark().Styles().Swatch, "bold")

		assert.False(t, ok)
	})
}
