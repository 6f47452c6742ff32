package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot stores each slot as a JSON file under a base directory.
type FileSlot struct {
	dir string
}

// NewFileSlot creates the base directory if needed and returns a FileSlot.
func NewFileSlot(dir string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}
	return &FileSlot{dir: dir}, nil
}

func (f *FileSlot) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileSlot) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error reading slot %s: %w", key, err)
	}
	return data, true, nil
}

// Write replaces the slot contents via a temp file and rename so a crash
// mid-write never leaves a truncated blob behind.
func (f *FileSlot) Write(key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+"_*.tmp")
	if err != nil {
		return fmt.Errorf("error writing slot %s: %w", key, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("error writing slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error writing slot %s: %w", key, err)
	}

	if err := os.Rename(tmpPath, f.path(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error writing slot %s: %w", key, err)
	}
	return nil
}

func (f *FileSlot) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error deleting slot %s: %w", key, err)
	}
	return nil
}
