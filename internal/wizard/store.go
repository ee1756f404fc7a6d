package wizard

import (
	"encoding/json"
	"os"
)

// Store persists a draft between sessions. It is a convenience cache, not a
// consistency mechanism: implementations may lose data without breaking the
// wizard, which always trusts its in-memory draft.
type Store interface {
	Load() (Draft, bool, error)
	Save(draft Draft) error
	Clear() error
}

// FileStore keeps the draft as a JSON file, standing in for the browser's
// local storage.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (Draft, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDraft(), false, nil
		}
		return NewDraft(), false, err
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		// a corrupt cache is discarded, not surfaced
		return NewDraft(), false, nil
	}
	if draft.Step == "" {
		draft.Step = StepCompetence
	}
	return draft, true, nil
}

func (s *FileStore) Save(draft Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryStore holds the draft in memory only.
type MemoryStore struct {
	draft Draft
	saved bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (Draft, bool, error) {
	if !s.saved {
		return NewDraft(), false, nil
	}
	return s.draft, true, nil
}

func (s *MemoryStore) Save(draft Draft) error {
	s.draft = draft
	s.saved = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.draft = NewDraft()
	s.saved = false
	return nil
}
