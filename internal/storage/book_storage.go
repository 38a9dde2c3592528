package storage

import (
	"github.com/mesh-intelligence/estatebook/internal/book"
)

// PersonBookStorage reads and writes the person book. Read reports false
// when nothing has been stored yet.
type PersonBookStorage interface {
	ReadPersonBook() (*book.PersonBook, bool, error)
	SavePersonBook(b *book.PersonBook) error
}

// PropertyBookStorage reads and writes the property book. Read reports
// false when nothing has been stored yet.
type PropertyBookStorage interface {
	ReadPropertyBook() (*book.PropertyBook, bool, error)
	SavePropertyBook(b *book.PropertyBook) error
}

// BookStorage stores both books.
type BookStorage interface {
	PersonBookStorage
	PropertyBookStorage
}

type personBookJSON struct {
	Persons []PersonRecord `json:"persons"`
}

type propertyBookJSON struct {
	Properties []PropertyRecord `json:"properties"`
}

// JSONBookStorage keeps each book in its own JSON file.
type JSONBookStorage struct {
	personPath   string
	propertyPath string
}

// NewJSONBookStorage returns storage for the given book files.
func NewJSONBookStorage(personPath, propertyPath string) *JSONBookStorage {
	return &JSONBookStorage{personPath: personPath, propertyPath: propertyPath}
}

// PersonBookPath returns the person book file.
func (s *JSONBookStorage) PersonBookPath() string { return s.personPath }

// PropertyBookPath returns the property book file.
func (s *JSONBookStorage) PropertyBookPath() string { return s.propertyPath }

func (s *JSONBookStorage) ReadPersonBook() (*book.PersonBook, bool, error) {
	var doc personBookJSON
	ok, err := readJSON(s.personPath, &doc)
	if !ok || err != nil {
		return nil, ok, err
	}
	b, err := PersonBookFromRecords(doc.Persons)
	if err != nil {
		return nil, true, &DataConversionError{Path: s.personPath, Err: err}
	}
	return b, true, nil
}

func (s *JSONBookStorage) SavePersonBook(b *book.PersonBook) error {
	return writeJSON(s.personPath, personBookJSON{Persons: PersonRecords(b)})
}

func (s *JSONBookStorage) ReadPropertyBook() (*book.PropertyBook, bool, error) {
	var doc propertyBookJSON
	ok, err := readJSON(s.propertyPath, &doc)
	if !ok || err != nil {
		return nil, ok, err
	}
	b, err := PropertyBookFromRecords(doc.Properties)
	if err != nil {
		return nil, true, &DataConversionError{Path: s.propertyPath, Err: err}
	}
	return b, true, nil
}

func (s *JSONBookStorage) SavePropertyBook(b *book.PropertyBook) error {
	return writeJSON(s.propertyPath, propertyBookJSON{Properties: PropertyRecords(b)})
}
