package storage

import (
	"log/slog"

	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/internal/model"
)

// Storage is everything the application persists.
type Storage interface {
	BookStorage
	PrefsStorage
}

// Manager composes book storage and preferences storage.
type Manager struct {
	books  BookStorage
	prefs  PrefsStorage
	logger *slog.Logger
}

// NewManager returns a Manager over books and prefs.
func NewManager(books BookStorage, prefs PrefsStorage, logger *slog.Logger) *Manager {
	return &Manager{books: books, prefs: prefs, logger: logger}
}

func (m *Manager) ReadUserPrefs() (model.UserPrefs, bool, error) {
	m.logger.Debug("reading user preferences")
	return m.prefs.ReadUserPrefs()
}

func (m *Manager) SaveUserPrefs(prefs model.UserPrefs) error {
	m.logger.Debug("saving user preferences")
	return m.prefs.SaveUserPrefs(prefs)
}

func (m *Manager) ReadPersonBook() (*book.PersonBook, bool, error) {
	m.logger.Debug("reading person book")
	return m.books.ReadPersonBook()
}

func (m *Manager) SavePersonBook(b *book.PersonBook) error {
	m.logger.Debug("saving person book", "persons", b.Len())
	return m.books.SavePersonBook(b)
}

func (m *Manager) ReadPropertyBook() (*book.PropertyBook, bool, error) {
	m.logger.Debug("reading property book")
	return m.books.ReadPropertyBook()
}

func (m *Manager) SavePropertyBook(b *book.PropertyBook) error {
	m.logger.Debug("saving property book", "properties", b.Len())
	return m.books.SavePropertyBook(b)
}
