package history

import "time"

// Actions recorded in the history.
const (
	ActionSave      = "save"
	ActionOverwrite = "overwrite"
	ActionRemove    = "remove"
	ActionImport    = "import"
	ActionExport    = "export"
	ActionCopy      = "copy"
)

// Entry is one recorded preset action.
type Entry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Mood      string    `json:"mood,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}
