package preset

import "errors"

// Sentinel errors for preset operations. Callers classify with errors.Is.
var (
	// ErrInvalidFormat indicates import data that is neither a JSON array
	// of presets nor an object with a "presets" array.
	ErrInvalidFormat = errors.New("invalid preset file format")

	// ErrPresetExists indicates an upsert hit an existing mood and the
	// caller did not approve the overwrite.
	ErrPresetExists = errors.New("a preset with that mood exists")

	// ErrDeclined indicates the user declined a destructive action.
	ErrDeclined = errors.New("action declined")

	// ErrIndexOutOfRange indicates a preset position outside the list.
	ErrIndexOutOfRange = errors.New("preset index out of range")

	// ErrNotFound indicates no preset matches the requested mood.
	ErrNotFound = errors.New("preset not found")
)
