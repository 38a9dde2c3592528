package model

import (
	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/pkg/types"
)

// Model is the API commands use to read and mutate application state.
type Model interface {
	UserPrefs() UserPrefs
	SetUserPrefs(prefs UserPrefs)

	// ResetData empties both books and shows all entries.
	ResetData()

	// PersonBook returns the live person book.
	PersonBook() *book.PersonBook
	HasPerson(p types.Person) bool
	AddPerson(p types.Person) error
	DeletePerson(p types.Person) error
	SetPerson(target, edited types.Person) error
	FilteredPersons() []types.Person
	// UpdateFilteredPersons replaces the person filter; nil shows all.
	UpdateFilteredPersons(predicate func(types.Person) bool)

	PropertyBook() *book.PropertyBook
	HasProperty(p types.Property) bool
	AddProperty(p types.Property) error
	DeleteProperty(p types.Property) error
	SetProperty(target, edited types.Property) error
	FilteredProperties() []types.Property
	UpdateFilteredProperties(predicate func(types.Property) bool)
}
