package storage

import (
	"os"
	"path/filepath"
)

// FileBackend persists snapshots to a single JSON file. Writes go to a temp
// file first and rename into place so a crash mid-write leaves the previous
// snapshot intact.
type FileBackend struct {
	path string
}

// NewFileBackend creates the parent directory if needed.
func NewFileBackend(path string) (*FileBackend, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return &FileBackend{path: path}, nil
}

func (b *FileBackend) Load() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (b *FileBackend) Save(snapshot []byte) error {
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, snapshot, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path)
}
