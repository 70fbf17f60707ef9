package vibe

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Calm Ocean", "calm ocean"},
		{"  Sunset\t", "sunset"},
		{"", NeutralMood},
		{"   ", NeutralMood},
		{"Neutral ", "neutral"},
		{"\ufeffcalm\u2028", "calm"},
		{"calm\u0085", "calm\u0085"},
		{"ΣΊΣΥΦΟΣ", "σίσυφος"},
		{"İstanbul", "i\u0307stanbul"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHash_Pinned(t *testing.T) {
	tests := []struct {
		mood string
		want uint32
	}{
		{"calm ocean", 2018227328},
		{"neutral", 2353732312},
		{"sunset", 886784263},
		{"a", 3826002220},
		{"café ☕", 718705619},
		// Values from the browser's charCodeAt loop over trim().toLowerCase().
		{"ΣΊΣΥΦΟΣ", 1715921262},
		{"İstanbul", 189130224},
		{"\ufeffcalm", 3002172182},
	}
	for _, tt := range tests {
		if got := Hash(tt.mood); got != tt.want {
			t.Errorf("Hash(%q) = %d, want %d", tt.mood, got, tt.want)
		}
	}
}

func TestKey(t *testing.T) {
	if got := Key("   "); got != "" {
		t.Errorf("Key(blank) = %q, want empty", got)
	}
	if Key(" σίσυφος ") != Key("ΣΊΣΥΦΟΣ") {
		t.Error("expected case variants to share a key")
	}
}

func TestUpper(t *testing.T) {
	if got := Upper("straße"); got != "STRASSE" {
		t.Errorf("Upper = %q, want STRASSE", got)
	}
}

func TestHash_EmptyIsNeutral(t *testing.T) {
	want := Hash("neutral")
	for _, mood := range []string{"", "Neutral ", "  NEUTRAL"} {
		if got := Hash(mood); got != want {
			t.Errorf("Hash(%q) = %d, want %d", mood, got, want)
		}
	}
}

func TestHash_SurrogatePairs(t *testing.T) {
	// Astral characters hash as two UTF-16 code units, not one rune.
	if Hash("🌊") == Hash("\uFFFD") {
		t.Error("expected astral rune to hash differently from the replacement rune")
	}
	if Hash("🌊") != Hash("🌊 ") {
		t.Error("expected trailing whitespace to be ignored")
	}
}

func TestRandom_FirstValue(t *testing.T) {
	// seed 1: 1 -> 8193 -> 8193 -> 270369
	got := NewRandom(1).Next()
	want := float64(270369) / math.MaxUint32
	if got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
}

func TestRandom_Reproducible(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, 2018227328, math.MaxUint32} {
		a, b := NewRandom(seed), NewRandom(seed)
		for i := range 10 {
			va, vb := a.Next(), b.Next()
			if va != vb {
				t.Fatalf("seed %d draw %d: %v != %v", seed, i, va, vb)
			}
			if va < 0 || va >= 1 {
				t.Fatalf("seed %d draw %d: %v outside [0,1)", seed, i, va)
			}
		}
	}
}

func TestRandom_ConsecutiveDrawsDiffer(t *testing.T) {
	r := NewRandom(Hash("calm ocean"))
	first, second := r.Next(), r.Next()
	if first == second {
		t.Errorf("expected consecutive draws to differ, both %v", first)
	}
}

func TestRandom_ZeroSeedNotDegenerate(t *testing.T) {
	r := NewRandom(0)
	seen := map[float64]bool{}
	for range 5 {
		v := r.Next()
		if v == 0 {
			t.Fatal("zero seed produced a zero draw")
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 distinct draws, got %d", len(seen))
	}
}

func TestRandom_MaxStateClamped(t *testing.T) {
	// 0x5E6CFCE7 steps to 0xFFFFFFFF, which would divide to exactly 1.
	r := &Random{state: 0x5E6CFCE7}
	v := r.Next()
	if v >= 1 {
		t.Fatalf("Next() = %v, want < 1", v)
	}
	if r.state != math.MaxUint32 {
		t.Fatalf("state = %#x, want 0xFFFFFFFF", r.state)
	}
	r = &Random{state: 0x5E6CFCE7}
	if got := r.Intn(360); got != 359 {
		t.Errorf("Intn(360) = %d, want 359", got)
	}
}

func TestFromMood_CalmOcean(t *testing.T) {
	want := Palette{
		{Hue: 300, Saturation: 60, Lightness: 55},
		{Hue: 165, Saturation: 64, Lightness: 44},
	}
	for range 3 {
		if diff := cmp.Diff(want, FromMood("Calm Ocean")); diff != "" {
			t.Fatalf("palette mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestFromMood_Pinned(t *testing.T) {
	tests := []struct {
		mood string
		want Palette
	}{
		{"", Palette{{18, 61, 58}, {143, 66, 40}}},
		{"sunset", Palette{{274, 73, 45}, {93, 53, 51}}},
		{"energetic", Palette{{316, 63, 55}, {184, 52, 41}}},
		{"Café ☕", Palette{{333, 59, 53}, {105, 72, 38}}},
	}
	for _, tt := range tests {
		t.Run(tt.mood, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, FromMood(tt.mood)); diff != "" {
				t.Errorf("palette mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromMood_NormalizedFormsMatch(t *testing.T) {
	pairs := [][2]string{
		{"Calm Ocean", "  calm ocean "},
		{"", "neutral"},
		{"STORM", "storm"},
	}
	for _, p := range pairs {
		if diff := cmp.Diff(FromMood(p[0]), FromMood(p[1])); diff != "" {
			t.Errorf("FromMood(%q) != FromMood(%q):\n%s", p[0], p[1], diff)
		}
	}
}

func TestFromMood_Ranges(t *testing.T) {
	moods := []string{"a", "b", "calm", "storm", "joy", "grief", "focus", "late night", "🌊", "x y z"}
	for _, mood := range moods {
		p := FromMood(mood)
		if d := p.HueDistance(); d < MinHueSeparation {
			t.Errorf("%q: hue distance %d < %d", mood, d, MinHueSeparation)
		}
		for i, c := range p {
			if c.Hue < 0 || c.Hue >= 360 {
				t.Errorf("%q stop %d: hue %d out of range", mood, i, c.Hue)
			}
		}
		if p[0].Saturation < 55 || p[0].Saturation > 74 {
			t.Errorf("%q: s1 %d out of range", mood, p[0].Saturation)
		}
		if p[1].Saturation < 45 || p[1].Saturation > 74 {
			t.Errorf("%q: s2 %d out of range", mood, p[1].Saturation)
		}
		if p[0].Lightness < 40 || p[0].Lightness > 59 {
			t.Errorf("%q: l1 %d out of range", mood, p[0].Lightness)
		}
		if p[1].Lightness < 35 || p[1].Lightness > 59 {
			t.Errorf("%q: l2 %d out of range", mood, p[1].Lightness)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"hsl(300 60% 55%)", Color{300, 60, 55}},
		{"HSL(12, 40%, 50%)", Color{12, 40, 50}},
		{"hsl(12deg 40% 50%)", Color{12, 40, 50}},
		{"hsl(370 10% 20%)", Color{10, 10, 20}},
		{"hsl(-30 10% 20%)", Color{330, 10, 20}},
		{" hsl(10.6 40.4% 49.5%) ", Color{11, 40, 50}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "red", "#ff0000", "hsl(10 20 30)", "hsl(10 120% 30%)", "rgb(1, 2, 3)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
		}
	}
}

func TestColor_TextRoundTrip(t *testing.T) {
	c := Color{Hue: 165, Saturation: 64, Lightness: 44}
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "hsl(165 64% 44%)" {
		t.Fatalf("MarshalText = %q", text)
	}
	var got Color
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if got != c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestPalette_CSS(t *testing.T) {
	p := FromMood("Calm Ocean")

	wantDecl := "background: linear-gradient(135deg, hsl(300 60% 55%), hsl(165 64% 44%));"
	if got := p.Declaration(); got != wantDecl {
		t.Errorf("Declaration() = %q, want %q", got, wantDecl)
	}

	if got := p.ClipboardText(); got != wantDecl+"\n/* Generated by VibeFuse */" {
		t.Errorf("ClipboardText() = %q", got)
	}

	if diff := cmp.Diff([]string{wantDecl}, p.Declarations(false)); diff != "" {
		t.Errorf("Declarations(false) mismatch (-want +got):\n%s", diff)
	}
	animated := p.Declarations(true)
	if len(animated) != 3 || animated[2] != "animation: vibeShift 8s ease-in-out infinite;" {
		t.Errorf("Declarations(true) = %q", animated)
	}
}

func TestPalette_Stylesheet(t *testing.T) {
	p := FromMood("sunset")

	static := p.Stylesheet("", false)
	if !strings.HasPrefix(static, ".vibe {\n") {
		t.Errorf("expected default selector, got:\n%s", static)
	}
	if strings.Contains(static, "@keyframes") {
		t.Error("static stylesheet should not include keyframes")
	}

	moving := p.Stylesheet("#preview", true)
	for _, want := range []string{"#preview {", BackgroundSizeRule, AnimationRule, "@keyframes vibeShift", "100% { background-position: 0% 50%; }"} {
		if !strings.Contains(moving, want) {
			t.Errorf("animated stylesheet missing %q:\n%s", want, moving)
		}
	}
}
