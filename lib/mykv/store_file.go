package mykv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// fileStore keeps one file per key. Writes go to a temp file that is renamed into place,
// so a reader never sees a partial value.
type fileStore struct {
	sync.Mutex
	dir string
}

func NewFileStore(dir string) (Store, func(), error) {
	if dir == "" {
		return nil, func() {}, fmt.Errorf("file storage requires a directory")
	}
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error creating storage directory %s: %s", dir, err)
	}
	return &fileStore{dir: dir}, func() {}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *fileStore) Put(c context.Context, key string, value []byte) error {
	s.Lock()
	defer s.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp file for key %s: %s", key, err)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(value)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("error writing key %s: %s", key, err)
	}
	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("error closing temp file for key %s: %s", key, err)
	}

	err = os.Rename(tmp.Name(), s.path(key))
	if err != nil {
		return fmt.Errorf("error renaming into key %s: %s", key, err)
	}
	return nil
}

func (s *fileStore) Get(c context.Context, key string) ([]byte, bool, error) {
	value, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error reading key %s: %s", key, err)
	}
	return value, true, nil
}

func (s *fileStore) Delete(c context.Context, key string) error {
	s.Lock()
	defer s.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting key %s: %s", key, err)
	}
	return nil
}
