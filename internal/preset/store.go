package preset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fluxoryn/vibe-fuse/internal/kvstore"
	"github.com/fluxoryn/vibe-fuse/internal/logging"
)

const (
	// StorageKey is the key-value slot holding the preset list.
	StorageKey = "vibefuse.presets.v1"

	// MaxPresets caps the list; older entries fall off the tail.
	MaxPresets = 30

	// ExportFileName is the suggested name for exported files.
	ExportFileName = "vibefuse-presets.json"
)

// exportTimeLayout matches JavaScript's Date.prototype.toISOString.
const exportTimeLayout = "2006-01-02T15:04:05.000Z"

// Export is the document written by ExportAll.
type Export struct {
	ExportedAt string   `json:"exportedAt"`
	Presets    []Preset `json:"presets"`
}

// ImportResult summarizes an ImportMerge.
type ImportResult struct {
	// Imported is the number of presets read from the input.
	Imported int
	// Total is the length of the list after merging.
	Total int
	// Dropped is how many entries the cap cut from the merged list.
	Dropped int
}

// Store reads and writes the preset list. Every mutation is a whole-list
// overwrite of the slot; there is no transactional isolation between
// concurrent writers.
type Store struct {
	kv     kvstore.Store
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report unreadable data.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore returns a Store persisting into kv.
func NewStore(kv kvstore.Store, opts ...Option) *Store {
	s := &Store{kv: kv, logger: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored list. Missing or unreadable data yields an empty
// list; the failure is logged and never returned.
func (s *Store) Load() []Preset {
	list, err := s.load()
	if err != nil {
		s.logger.Warn("failed to load presets", "key", StorageKey, "error", err)
		return []Preset{}
	}
	return list
}

// load reads the stored list for a mutation. A failed read of the slot is
// returned so the caller does not overwrite presets it never saw; data that
// cannot be parsed still loads as empty. Entries that fail to decode are
// logged and skipped.
func (s *Store) load() ([]Preset, error) {
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("preset: failed to read presets: %w", err)
	}
	if !ok || len(bytes.TrimSpace(raw)) == 0 {
		return []Preset{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn("failed to parse presets", "key", StorageKey, "error", err)
		return []Preset{}, nil
	}

	list := make([]Preset, 0, len(entries))
	for i, entry := range entries {
		var p Preset
		if err := json.Unmarshal(entry, &p); err != nil {
			s.logger.Warn("skipping unreadable preset", "key", StorageKey, "index", i, "error", err)
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

// Save persists list, replacing whatever was stored.
func (s *Store) Save(list []Preset) error {
	if list == nil {
		list = []Preset{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("preset: failed to encode presets: %w", err)
	}
	if err := s.kv.Set(StorageKey, data); err != nil {
		return fmt.Errorf("preset: failed to save presets: %w", err)
	}
	return nil
}

// Find returns the stored preset whose mood matches case-insensitively.
func (s *Store) Find(mood string) (Preset, int, bool) {
	list := s.Load()
	i, ok := Index(list, mood)
	if !ok {
		return Preset{}, -1, false
	}
	return list[i], i, true
}

// Upsert inserts p at the head of the list. If a preset with the same key
// exists, overwrite must be true or ErrPresetExists is returned and nothing
// changes; when true the old entry is removed first.
func (s *Store) Upsert(p Preset, overwrite bool) error {
	list, err := s.load()
	if err != nil {
		return err
	}
	if i, ok := Index(list, p.Mood); ok {
		if !overwrite {
			return fmt.Errorf("preset: %q: %w", p.Mood, ErrPresetExists)
		}
		list = append(list[:i], list[i+1:]...)
	}

	list = append([]Preset{p}, list...)
	return s.Save(truncate(list))
}

// Remove deletes the preset at index. confirmed must be true or
// ErrDeclined is returned and nothing changes.
func (s *Store) Remove(index int, confirmed bool) (Preset, error) {
	list, err := s.load()
	if err != nil {
		return Preset{}, err
	}
	if index < 0 || index >= len(list) {
		return Preset{}, fmt.Errorf("preset: index %d (have %d): %w", index, len(list), ErrIndexOutOfRange)
	}
	if !confirmed {
		return Preset{}, ErrDeclined
	}

	removed := list[index]
	list = append(list[:index], list[index+1:]...)
	if err := s.Save(list); err != nil {
		return Preset{}, err
	}
	return removed, nil
}

// ExportAll returns the stored list as an indented Export document stamped
// with now.
func (s *Store) ExportAll(now time.Time) ([]byte, error) {
	doc := Export{
		ExportedAt: now.UTC().Format(exportTimeLayout),
		Presets:    s.Load(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("preset: failed to encode export: %w", err)
	}
	return data, nil
}

// ImportMerge parses data (a bare array or an Export-shaped object) and
// stores incoming ++ current, truncated to MaxPresets. Entries are not
// deduplicated. Unparseable input returns ErrInvalidFormat and leaves the
// store unchanged.
func (s *Store) ImportMerge(data []byte) (ImportResult, error) {
	incoming, err := ParseImport(data)
	if err != nil {
		return ImportResult{}, err
	}

	current, err := s.load()
	if err != nil {
		return ImportResult{}, err
	}

	merged := append(incoming, current...)
	kept := truncate(merged)
	if err := s.Save(kept); err != nil {
		return ImportResult{}, err
	}

	return ImportResult{
		Imported: len(incoming),
		Total:    len(kept),
		Dropped:  len(merged) - len(kept),
	}, nil
}

// ParseImport decodes import data without touching any store.
func ParseImport(data []byte) ([]Preset, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("preset: %w: %v", ErrInvalidFormat, err)
	}

	raw := json.RawMessage(data)
	if obj, ok := probe.(map[string]any); ok {
		field, ok := obj["presets"]
		if !ok || field == nil {
			return nil, fmt.Errorf("preset: %w: missing \"presets\" array", ErrInvalidFormat)
		}
		var wrapper struct {
			Presets json.RawMessage `json:"presets"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("preset: %w: %v", ErrInvalidFormat, err)
		}
		raw = wrapper.Presets
		probe = field
	}

	if _, ok := probe.([]any); !ok {
		return nil, fmt.Errorf("preset: %w: expected an array of presets", ErrInvalidFormat)
	}

	var list []Preset
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("preset: %w: %v", ErrInvalidFormat, err)
	}
	if list == nil {
		list = []Preset{}
	}
	return list, nil
}

func truncate(list []Preset) []Preset {
	if len(list) > MaxPresets {
		return list[:MaxPresets]
	}
	return list
}
