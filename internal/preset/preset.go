// Package preset persists named vibes.
//
// Presets live in a single key-value slot as a JSON array, most recently
// saved or imported first, capped at MaxPresets. Upsert keeps moods unique
// (case-insensitive); ImportMerge concatenates without deduplicating.
package preset

import (
	"encoding/json"
	"fmt"

	"github.com/fluxoryn/vibe-fuse/internal/vibe"
)

// Preset is a saved mood, its palette, and whether it animates.
type Preset struct {
	Mood     string       `json:"mood"`
	Colors   vibe.Palette `json:"colors"`
	Animated bool         `json:"animated"`
}

// Key returns the identity key: the mood, trimmed and lowercased.
func (p Preset) Key() string {
	return vibe.Key(p.Mood)
}

// Label is the display name, falling back to "preset N" (1-based) for an
// empty mood.
func (p Preset) Label(index int) string {
	if p.Mood == "" {
		return fmt.Sprintf("preset %d", index+1)
	}
	return p.Mood
}

// wirePreset mirrors the persisted shape. Animated is a pointer so a
// missing field can default to true.
type wirePreset struct {
	Mood     string       `json:"mood"`
	Colors   []vibe.Color `json:"colors"`
	Animated *bool        `json:"animated"`
}

// UnmarshalJSON decodes the persisted shape, requiring exactly two colors.
// A missing "animated" field decodes as true.
func (p *Preset) UnmarshalJSON(data []byte) error {
	var w wirePreset
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if len(w.Colors) != 2 {
		return fmt.Errorf("preset %q: expected 2 colors, got %d", w.Mood, len(w.Colors))
	}

	p.Mood = w.Mood
	p.Colors = vibe.Palette{w.Colors[0], w.Colors[1]}
	p.Animated = true
	if w.Animated != nil {
		p.Animated = *w.Animated
	}
	return nil
}

// Index returns the position of the preset whose key matches mood.
func Index(list []Preset, mood string) (int, bool) {
	key := vibe.Key(mood)
	for i, p := range list {
		if p.Key() == key {
			return i, true
		}
	}
	return -1, false
}
