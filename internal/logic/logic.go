// Package logic runs user commands against the model and persists the
// books after every command that changed them.
package logic

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/estatebook/internal/command"
	"github.com/mesh-intelligence/estatebook/internal/model"
	"github.com/mesh-intelligence/estatebook/internal/storage"
)

// MessageSaveFailed prefixes errors from persisting the books.
const MessageSaveFailed = "could not save data"

// ErrSave marks a command that ran but whose changes could not be written.
var ErrSave = errors.New(MessageSaveFailed)

// Manager parses and executes commands, then saves the books.
type Manager struct {
	model   model.Model
	storage storage.BookStorage
	logger  *slog.Logger

	// Books changed since their last successful save. Both start dirty so
	// the first command writes whatever was loaded.
	personsDirty    bool
	propertiesDirty bool
}

// NewManager returns a Manager over m that saves through s.
func NewManager(m model.Model, s storage.BookStorage, logger *slog.Logger) *Manager {
	l := &Manager{
		model:           m,
		storage:         s,
		logger:          logger,
		personsDirty:    true,
		propertiesDirty: true,
	}
	m.PersonBook().OnChange(func() { l.personsDirty = true })
	m.PropertyBook().OnChange(func() { l.propertiesDirty = true })
	return l
}

// Execute runs one line of user input. Parse and command errors are
// returned unchanged. If saving fails the model keeps the change and the
// returned error wraps ErrSave and the I/O error.
func (l *Manager) Execute(line string) (command.Result, error) {
	l.logger.Debug("user command", "line", line)

	c, err := command.Parse(line)
	if err != nil {
		return command.Result{}, err
	}
	res, err := c.Execute(l.model)
	if err != nil {
		return command.Result{}, err
	}
	if err := l.save(); err != nil {
		return res, err
	}
	return res, nil
}

// save writes every dirty book.
func (l *Manager) save() error {
	if l.personsDirty {
		if err := l.storage.SavePersonBook(l.model.PersonBook()); err != nil {
			l.logger.Error("saving person book", "error", err)
			return fmt.Errorf("%w: %w", ErrSave, err)
		}
		l.personsDirty = false
	}
	if l.propertiesDirty {
		if err := l.storage.SavePropertyBook(l.model.PropertyBook()); err != nil {
			l.logger.Error("saving property book", "error", err)
			return fmt.Errorf("%w: %w", ErrSave, err)
		}
		l.propertiesDirty = false
	}
	return nil
}
