package tint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor indicates a color string that is neither a valid hex
// nor a valid HSL specification.
var ErrInvalidColor = errors.New("invalid color")

// RGB is a normalized truecolor value. The channel range [0, 255] is
// enforced by the field types.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor normalizes a color specification to RGB. It accepts hex
// colors as "#RGB" (each digit duplicated) or "#RRGGBB", and HSL colors
// of the exact form "hsl(H,S%,L%)" with H in degrees and S and L in
// percent. Anything else fails with ErrInvalidColor.
func ParseColor(s string) (RGB, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")"):
		return parseHSL(s)
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

func parseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	switch len(digits) {
	case 3:
		var expanded strings.Builder
		for _, d := range digits {
			expanded.WriteRune(d)
			expanded.WriteRune(d)
		}
		digits = expanded.String()
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func parseHSL(s string) (RGB, error) {
	fields := strings.Split(s[len("hsl(") : len(s)-1], ",")
	if len(fields) != 3 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	h, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	sat, err := parsePercent(fields[1])
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	light, err := parsePercent(fields[2])
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return hslToRGB(h/360, sat, light), nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

// hslToRGB converts hue in [0,1) turns, saturation and lightness in
// [0,1] to RGB. Channels scale to bytes by truncation toward zero, not
// rounding, so results match the reference output bit for bit.
func hslToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := uint8(int(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2

	return RGB{
		R: uint8(int(hueChannel(m1, m2, h+1.0/3.0) * 255)),
		G: uint8(int(hueChannel(m1, m2, h) * 255)),
		B: uint8(int(hueChannel(m1, m2, h-1.0/3.0) * 255)),
	}
}

func hueChannel(m1, m2, hue float64) float64 {
	// math.Mod keeps the dividend's sign; hue must land in [0,1).
	hue = math.Mod(hue, 1)
	if hue < 0 {
		hue++
	}
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6
	default:
		return m1
	}
}
