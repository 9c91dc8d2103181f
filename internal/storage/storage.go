// Package storage is the persistence layer for local app state. It
// exposes a small key/value Backend interface with a file-based
// implementation, atomic writes guarded by a directory flock, and an
// in-memory one for tests.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Backend is the key/value layer app state persists through. Keys are
// file-name-safe strings; values are opaque blobs.
type Backend interface {
	// Read returns the stored value and whether the key exists.
	Read(key string) ([]byte, bool, error)
	// Write stores the value, replacing any previous one.
	Write(key string, data []byte) error
}

// FileBackend stores each key as a JSON file in a directory. Writes are
// atomic, temp file then rename, and a flock guards against another
// process touching the same data directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the directory if needed and returns a backend
// rooted there.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// Read loads a key's file. A missing file is not an error.
func (b *FileBackend) Read(key string) ([]byte, bool, error) {
	lock := newDirLock(b.dir)
	if err := lock.acquire(); err != nil {
		return nil, false, fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = lock.release() }()

	data, err := os.ReadFile(filepath.Join(b.dir, key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return data, true, nil
}

// Write replaces a key's file atomically.
func (b *FileBackend) Write(key string, data []byte) error {
	lock := newDirLock(b.dir)
	if err := lock.acquire(); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = lock.release() }()

	target := filepath.Join(b.dir, key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// MemoryBackend keeps values in a map. Used by tests and as a scratch
// store when no data directory is configured.
type MemoryBackend struct {
	values map[string][]byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Read returns the stored value and whether the key exists.
func (b *MemoryBackend) Read(key string) ([]byte, bool, error) {
	data, ok := b.values[key]
	return data, ok, nil
}

// Write stores the value.
func (b *MemoryBackend) Write(key string, data []byte) error {
	b.values[key] = append([]byte(nil), data...)
	return nil
}

const lockFileName = "bodybuddy.lock"

// dirLock provides cross-process mutual exclusion over a data
// directory using flock(2).
type dirLock struct {
	path string
	file *os.File
}

func newDirLock(dir string) *dirLock {
	return &dirLock{path: filepath.Join(dir, lockFileName)}
}

func (l *dirLock) acquire() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		_ = f.Close()
		return fmt.Errorf("flock: %w", err)
	}
	l.file = f
	return nil
}

func (l *dirLock) release() error {
	if l.file == nil {
		return nil
	}
	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		_ = l.file.Close()
		l.file = nil
		return fmt.Errorf("funlock: %w", err)
	}
	err := l.file.Close()
	l.file = nil
	return err
}
