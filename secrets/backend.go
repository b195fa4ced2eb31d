package secrets

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Backend is the storage medium for the serialized secret blob. The store
// never interprets the blob; a file, a flash partition or a key-value
// namespace all qualify.
type Backend interface {
	Load() ([]byte, error)
	Save([]byte) error
}

// FileBackend persists the blob in a single file, written atomically via
// a temp file and rename so a crash mid-save never corrupts the bonds.
type FileBackend struct {
	Path string
}

// NewFileBackend returns a file backend at the given path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{Path: path}
}

func (f *FileBackend) Load() ([]byte, error) {
	data, err := ioutil.ReadFile(f.Path)
	if err != nil {
		return nil, errors.Wrap(err, "read secrets file")
	}
	return data, nil
}

func (f *FileBackend) Save(data []byte) error {
	dir := filepath.Dir(f.Path)
	tmp, err := ioutil.TempFile(dir, ".secrets-*")
	if err != nil {
		return errors.Wrap(err, "create temp secrets file")
	}

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "write temp secrets file")
	}

	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "replace secrets file")
	}
	return nil
}

// MemBackend keeps the blob in memory. Useful in tests and on hosts where
// bonding persistence across restarts is not wanted.
type MemBackend struct {
	blob []byte
}

func (m *MemBackend) Load() ([]byte, error) {
	if m.blob == nil {
		return nil, errors.New("no blob stored")
	}
	return m.blob, nil
}

func (m *MemBackend) Save(data []byte) error {
	m.blob = append([]byte(nil), data...)
	return nil
}
