// Package kvstore provides the durable key-value slot that presets are
// persisted in.
//
// A Store holds opaque byte values under string keys. Writes replace the
// whole value, so a failed write leaves the previous value intact.
// Backends: SQLite (default, shared with the history table), plain files,
// the OS keychain, and an in-memory map for tests.
package kvstore

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/fluxoryn/vibe-fuse/internal/util"
)

// Backend names accepted by Open.
const (
	BackendSQLite  = "sqlite"
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// DefaultBackend is used when no backend is configured.
const DefaultBackend = BackendSQLite

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a durable key-value slot.
type Store interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been set.
	Get(key string) (value []byte, ok bool, err error)

	// Set replaces the value stored under key.
	Set(key string, value []byte) error

	// Close releases backend resources.
	Close() error
}

// Backends returns the names of all backends Open understands, sorted.
func Backends() []string {
	names := []string{BackendSQLite, BackendFile, BackendKeyring, BackendMemory}
	sort.Strings(names)
	return names
}

// ValidBackend reports whether name is a known backend.
func ValidBackend(name string) bool {
	name = util.NormalizeKey(name)
	for _, b := range Backends() {
		if b == name {
			return true
		}
	}
	return false
}

// Open returns the store for the named backend at its default location.
// An empty name selects DefaultBackend.
func Open(backend string) (Store, error) {
	switch util.NormalizeKey(backend) {
	case "", BackendSQLite:
		return OpenSQLite()
	case BackendFile:
		return OpenFile()
	case BackendKeyring:
		return NewKeyring(""), nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("kvstore: %w %q (valid: %s)", ErrUnknownBackend, backend, strings.Join(Backends(), ", "))
	}
}

// Memory is an in-process Store. The zero value is not usable; call NewMemory.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Close() error { return nil }
