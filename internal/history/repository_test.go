package history

import (
	"path/filepath"
	"testing"
	"time"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vibefuse.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &Entry{Action: ActionSave, Mood: "calm ocean"}
	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		entry := &Entry{
			Action:    ActionSave,
			Mood:      "calm",
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestListByAction(t *testing.T) {
	r := tempRepo(t)

	entries := []*Entry{
		{Action: ActionSave, Mood: "calm"},
		{Action: ActionImport, Detail: "3 presets"},
		{Action: ActionSave, Mood: "storm"},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	saves, err := r.ListByAction(ActionSave, 10)
	if err != nil {
		t.Fatalf("ListByAction failed: %v", err)
	}
	if len(saves) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(saves))
	}
	for _, entry := range saves {
		if entry.Action != ActionSave {
			t.Errorf("expected action %q, got %q", ActionSave, entry.Action)
		}
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	old := &Entry{Action: ActionRemove, Timestamp: time.Now().UTC().Add(-48 * time.Hour)}
	recent := &Entry{Action: ActionRemove, Timestamp: time.Now().UTC().Add(-1 * time.Hour)}
	if err := r.Save(old); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Save(recent); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(remaining))
	}
}

func TestSharesDatabaseWithOtherTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vibefuse.db")

	r1, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	_ = r1.Save(&Entry{Action: ActionExport})
	r1.Close()

	r2, err := OpenAt(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer r2.Close()

	entries, err := r2.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != ActionExport {
		t.Errorf("expected persisted export entry, got %+v", entries)
	}
}
