// SPDX-License-Identifier: MIT

package modelstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
	"github.com/katalvlaran/segmatch/knn"
	"github.com/katalvlaran/segmatch/segment"
)

const (
	lockName = ".segmatch.lock"

	// DefaultLockTimeout bounds how long a writer waits for the store lock.
	DefaultLockTimeout = 5 * time.Second

	lockRetry = 50 * time.Millisecond
)

// Store is a directory of model and corpus files. Entry names carry their
// extension, which selects the format (e.g. "gestures.json.zst").
//
// Writers are serialized across processes through a lock file in Dir.
// Readers take no lock; writes replace files atomically.
type Store struct {
	Dir         string
	LockTimeout time.Duration
}

// New returns a Store rooted at dir with the default lock timeout.
func New(dir string) *Store {
	return &Store{Dir: dir, LockTimeout: DefaultLockTimeout}
}

// SaveModel writes m under name after validating it.
func (s *Store) SaveModel(name string, m *knn.Model) error {
	if err := m.Validate(); err != nil {
		return err
	}

	return s.write(name, m)
}

// LoadModel reads and validates the model stored under name.
func (s *Store) LoadModel(name string) (*knn.Model, error) {
	var m knn.Model
	if err := ReadFile(s.path(name), &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("modelstore: %s: %w", name, err)
	}

	return &m, nil
}

// SaveCorpus writes a labeled corpus under name. Every segment is validated first.
func (s *Store) SaveCorpus(name string, corpus []segment.LabeledSegment) error {
	for i, seg := range corpus {
		if err := seg.Validate(); err != nil {
			return fmt.Errorf("modelstore: segment %d: %w", i, err)
		}
	}

	return s.write(name, corpus)
}

// LoadCorpus reads the corpus stored under name.
func (s *Store) LoadCorpus(name string) ([]segment.LabeledSegment, error) {
	return LoadCorpusFile(s.path(name))
}

// LoadCorpusFile reads and validates a corpus file outside any store.
func LoadCorpusFile(path string) ([]segment.LabeledSegment, error) {
	var corpus []segment.LabeledSegment
	if err := ReadFile(path, &corpus); err != nil {
		return nil, err
	}
	for i, seg := range corpus {
		if err := seg.Validate(); err != nil {
			return nil, fmt.Errorf("modelstore: %s: segment %d: %w", path, i, err)
		}
	}

	return corpus, nil
}

// List returns the sorted names of entries with a known extension.
// A missing directory yields an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		if _, err := FormatFromPath(e.Name()); err != nil {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Delete removes the entry stored under name.
func (s *Store) Delete(name string) error {
	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("modelstore: %s: %w", name, ErrNotFound)
		}
		return err
	}

	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, filepath.Base(name))
}

func (s *Store) write(name string, v any) error {
	if _, err := FormatFromPath(name); err != nil {
		return err
	}
	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	return WriteFile(s.path(name), v)
}

// lock takes the store lock, polling until LockTimeout elapses.
func (s *Store) lock() (func(), error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, err
	}
	timeout := s.LockTimeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}

	l := flock.New(filepath.Join(s.Dir, lockName))
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("modelstore: acquire lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("modelstore: %s: %w", s.Dir, ErrLocked)
		}
		time.Sleep(lockRetry)
	}
}
