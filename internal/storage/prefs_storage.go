package storage

import (
	"github.com/mesh-intelligence/estatebook/internal/model"
)

// PrefsStorage reads and writes the user preferences. Read reports false
// when no preferences file exists.
type PrefsStorage interface {
	ReadUserPrefs() (model.UserPrefs, bool, error)
	SaveUserPrefs(prefs model.UserPrefs) error
}

// JSONPrefsStorage keeps the user preferences in a JSON file. Keys missing
// from the file keep their default value.
type JSONPrefsStorage struct {
	path     string
	defaults model.UserPrefs
}

// NewJSONPrefsStorage returns preferences storage at path.
func NewJSONPrefsStorage(path string, defaults model.UserPrefs) *JSONPrefsStorage {
	return &JSONPrefsStorage{path: path, defaults: defaults}
}

// Path returns the preferences file.
func (s *JSONPrefsStorage) Path() string { return s.path }

func (s *JSONPrefsStorage) ReadUserPrefs() (model.UserPrefs, bool, error) {
	prefs := s.defaults
	ok, err := readJSON(s.path, &prefs)
	if !ok || err != nil {
		return s.defaults, ok, err
	}
	if err := prefs.Validate(); err != nil {
		return s.defaults, true, &DataConversionError{Path: s.path, Err: err}
	}
	return prefs, true, nil
}

func (s *JSONPrefsStorage) SaveUserPrefs(prefs model.UserPrefs) error {
	return writeJSON(s.path, prefs)
}
