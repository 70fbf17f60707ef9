package vibe

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MinHueSeparation is the smallest distance, in degrees mod 360, between
// the two hues FromMood produces.
const MinHueSeparation = 120

// Color is a single HSL stop. Hue is in [0, 360); Saturation and Lightness
// are percentages.
type Color struct {
	Hue        int
	Saturation int
	Lightness  int
}

// Palette is the two-stop gradient derived from a mood.
type Palette [2]Color

// FromMood derives the palette for mood. The draw order is part of the
// contract: changing it changes every palette ever saved.
func FromMood(mood string) Palette {
	rnd := NewRandom(Hash(mood))

	h1 := rnd.Intn(360)
	h2 := (h1 + MinHueSeparation + rnd.Intn(120)) % 360
	s1 := 55 + rnd.Intn(20)
	s2 := 45 + rnd.Intn(30)
	l1 := 40 + rnd.Intn(20)
	l2 := 35 + rnd.Intn(25)

	return Palette{
		{Hue: h1, Saturation: s1, Lightness: l1},
		{Hue: h2, Saturation: s2, Lightness: l2},
	}
}

// HueDistance returns the circular distance between the palette's hues.
func (p Palette) HueDistance() int {
	d := ((p[1].Hue-p[0].Hue)%360 + 360) % 360
	if d > 180 {
		d = 360 - d
	}
	return d
}

// String formats the color as a CSS Color 4 hsl() value, e.g. "hsl(300 60% 55%)".
func (c Color) String() string {
	return fmt.Sprintf("hsl(%d %d%% %d%%)", c.Hue, c.Saturation, c.Lightness)
}

// MarshalText encodes the color as its hsl() string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes an hsl() string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// hslPattern accepts both the space-separated form written by this package
// and the legacy comma-separated form, with optional "deg" and fractions.
var hslPattern = regexp.MustCompile(`^hsl\(\s*(-?[\d.]+)(?:deg)?\s*[,\s]\s*([\d.]+)%\s*[,\s]\s*([\d.]+)%\s*\)$`)

// ParseColor parses an hsl() color string. Fractional components are
// rounded; the hue is wrapped into [0, 360).
func ParseColor(s string) (Color, error) {
	m := hslPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return Color{}, fmt.Errorf("vibe: invalid hsl color %q", s)
	}

	var parts [3]int
	for i := range parts {
		f, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return Color{}, fmt.Errorf("vibe: invalid hsl color %q: %w", s, err)
		}
		parts[i] = int(math.Round(f))
	}

	hue := (parts[0]%360 + 360) % 360
	if parts[1] > 100 || parts[2] > 100 {
		return Color{}, fmt.Errorf("vibe: hsl color %q out of range", s)
	}

	return Color{Hue: hue, Saturation: parts[1], Lightness: parts[2]}, nil
}
