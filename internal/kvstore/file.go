package kvstore

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/fluxoryn/vibe-fuse/internal/database"
)

const fileDir = "store"

// File implements Store as one file per key under a directory. Writes go
// to a temp file that is renamed over the target.
type File struct {
	dir string
}

// OpenFile returns a file store under the default data directory
// (~/.config/vibefuse/store).
func OpenFile() (*File, error) {
	base, err := appDir()
	if err != nil {
		return nil, err
	}
	return NewFile(filepath.Join(base, fileDir)), nil
}

// NewFile returns a file store rooted at dir. The directory is created on
// first write.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Get returns the contents of the file for key.
func (f *File) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.pathForKey(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kvstore: failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Set atomically replaces the file for key.
func (f *File) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("kvstore: failed to create directory %s: %w", f.dir, err)
	}

	path := f.pathForKey(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("kvstore: failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("kvstore: failed to replace %s: %w", key, err)
	}
	return nil
}

func (f *File) Close() error { return nil }

// appDir is the directory holding the application database.
func appDir() (string, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("kvstore: %w", err)
	}
	return filepath.Dir(path), nil
}

func (f *File) pathForKey(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}
