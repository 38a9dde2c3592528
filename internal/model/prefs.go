package model

import (
	"errors"

	"github.com/mesh-intelligence/estatebook/internal/paths"
)

// Default preference values.
const (
	DefaultWindowWidth  = 740
	DefaultWindowHeight = 600
)

// Preference validation errors.
var (
	ErrInvalidWindow   = errors.New("window dimensions must be positive")
	ErrMissingBookFile = errors.New("book file path must not be empty")
)

// WindowSettings records the last window geometry.
type WindowSettings struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// UserPrefs holds the user preferences persisted between runs.
type UserPrefs struct {
	Window           WindowSettings `json:"window"`
	PersonBookFile   string         `json:"personBookFile"`
	PropertyBookFile string         `json:"propertyBookFile"`
}

// DefaultUserPrefs returns preferences that keep both book files in dataDir.
func DefaultUserPrefs(dataDir string) UserPrefs {
	return UserPrefs{
		Window: WindowSettings{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		PersonBookFile:   paths.ResolveFile(dataDir, paths.PersonBookFile),
		PropertyBookFile: paths.ResolveFile(dataDir, paths.PropertyBookFile),
	}
}

// Validate checks that the preferences are usable.
func (p UserPrefs) Validate() error {
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		return ErrInvalidWindow
	}
	if p.PersonBookFile == "" || p.PropertyBookFile == "" {
		return ErrMissingBookFile
	}
	return nil
}
