package vibe

import (
	"fmt"
	"strings"
)

// GradientAngle is the direction of every gradient this package emits.
const GradientAngle = "135deg"

// AnimationName is the keyframes identifier referenced by AnimationRule.
const AnimationName = "vibeShift"

// GeneratedByComment trails CSS copied to the clipboard.
const GeneratedByComment = "/* Generated by VibeFuse */"

// AnimationRule is the position-shift animation applied when a vibe is animated.
const AnimationRule = "animation: " + AnimationName + " 8s ease-in-out infinite;"

// BackgroundSizeRule enlarges the background so the animation has room to move.
const BackgroundSizeRule = "background-size: 200% 200%;"

// Keyframes is the @keyframes block backing AnimationRule.
const Keyframes = `@keyframes ` + AnimationName + ` {
  0% { background-position: 0% 50%; }
  50% { background-position: 100% 50%; }
  100% { background-position: 0% 50%; }
}`

// Gradient returns the linear-gradient() value for the palette.
func (p Palette) Gradient() string {
	return fmt.Sprintf("linear-gradient(%s, %s, %s)", GradientAngle, p[0], p[1])
}

// Declaration returns the background declaration for the palette, e.g.
//
//	background: linear-gradient(135deg, hsl(300 60% 55%), hsl(165 64% 44%));
func (p Palette) Declaration() string {
	return "background: " + p.Gradient() + ";"
}

// Declarations returns the declaration lines needed to render the palette,
// including the animation pair when animated is set.
func (p Palette) Declarations(animated bool) []string {
	lines := []string{p.Declaration()}
	if animated {
		lines = append(lines, BackgroundSizeRule, AnimationRule)
	}
	return lines
}

// ClipboardText is the text placed on the clipboard by a copy action.
func (p Palette) ClipboardText() string {
	return p.Declaration() + "\n" + GeneratedByComment
}

// Stylesheet renders a self-contained ruleset for selector. When animated
// is set the keyframes block is appended.
func (p Palette) Stylesheet(selector string, animated bool) string {
	if selector == "" {
		selector = ".vibe"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", selector)
	for _, line := range p.Declarations(animated) {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	b.WriteString("}\n")
	if animated {
		b.WriteString("\n")
		b.WriteString(Keyframes)
		b.WriteString("\n")
	}
	return b.String()
}
