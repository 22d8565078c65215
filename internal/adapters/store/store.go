// Package store persists tracker sessions in the project's .brief directory.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/zerr"
)

// sessionFile is the on-disk layout of sessions.json.
type sessionFile struct {
	Version  int                             `json:"version"`
	Sessions map[string]*domain.SessionState `json:"sessions"`
}

const fileVersion = 1

// Store implements ports.SessionStore with one JSON file per project root.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new session store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the session of projectID stored under root.
func (s *Store) Get(root, projectID string) (*domain.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read(root)
	if err != nil {
		return nil, err
	}
	state, ok := file.Sessions[projectID]
	if !ok {
		return nil, nil
	}
	return state, nil
}

// Put stores the session, replacing any previous session of the same project.
func (s *Store) Put(root string, state *domain.SessionState) error {
	if state == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read(root)
	if err != nil {
		return err
	}
	file.Sessions[state.ProjectID] = state.Clone()
	return s.write(root, file)
}

// Delete removes the session of projectID.
func (s *Store) Delete(root, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read(root)
	if err != nil {
		return err
	}
	if _, ok := file.Sessions[projectID]; !ok {
		return nil
	}
	delete(file.Sessions, projectID)
	return s.write(root, file)
}

// Path returns the location of the session file for root.
func Path(root string) string {
	return filepath.Join(root, domain.DefaultSessionsPath())
}

func (s *Store) read(root string) (*sessionFile, error) {
	filename := Path(root)
	file := &sessionFile{Version: fileVersion, Sessions: map[string]*domain.SessionState{}}

	//nolint:gosec // Path is constructed from the project root and a fixed file name
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	if err := json.Unmarshal(data, file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}
	if file.Sessions == nil {
		file.Sessions = map[string]*domain.SessionState{}
	}
	return file, nil
}

// write replaces the session file through a temporary file and rename.
func (s *Store) write(root string, file *sessionFile) error {
	file.Version = fileVersion
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := Path(root)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, domain.SessionsFileName+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}
