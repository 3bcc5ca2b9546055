// Package lipgloss provides chrome implementations using the Lipgloss styling library.
package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/tint"
)

// Compile-time interface verification.
var _ tint.Chrome = (*Chrome)(nil)

// Chrome implements tint.Chrome with Lipgloss-compatible colors.
type Chrome struct {
	styles tint.ChromeStyles
}

// Styles returns the color styles for this chrome.
func (c *Chrome) Styles() tint.ChromeStyles {
	return c.styles
}

// Detect returns the chrome matching the terminal background.
func Detect() *Chrome {
	if lipgloss.HasDarkBackground() {
		return Dark()
	}
	return Light()
}

// Dark returns chrome optimized for dark terminal backgrounds.
// Swatch text is dark so it stays readable over bright theme colors.
func Dark() *Chrome {
	return &Chrome{
		styles: tint.ChromeStyles{
			Title: tint.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			AttrName: tint.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			AttrValue: tint.ColorPair{
				Foreground: "#cdd6f4", // Near-white body text
			},
			Swatch: tint.ColorPair{
				Foreground: "#1e1e2e", // Dark text over the sampled color
			},
			Comment: tint.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Status: tint.ColorPair{
				Foreground: "#a6adc8", // Muted foreground
				Background: "#313244", // Dark surface
			},
		},
	}
}

// Light returns chrome optimized for light terminal backgrounds.
func Light() *Chrome {
	return &Chrome{
		styles: tint.ChromeStyles{
			Title: tint.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			AttrName: tint.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			AttrValue: tint.ColorPair{
				Foreground: "#4c4f69", // Dark body text
			},
			Swatch: tint.ColorPair{
				Foreground: "#ffffff", // Light text over the sampled color
			},
			Comment: tint.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			Status: tint.ColorPair{
				Foreground: "#6c6f85", // Muted foreground
				Background: "#e6e9ef", // Light surface
			},
		},
	}
}
