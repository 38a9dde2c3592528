package model

import (
	"slices"

	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/pkg/types"
)

// Manager is the in-memory Model.
type Manager struct {
	persons    *book.PersonBook
	properties *book.PropertyBook
	prefs      UserPrefs

	filteredPersons    *book.FilteredList[types.Person]
	filteredProperties *book.FilteredList[types.Property]
}

// NewManager returns a Manager holding copies of persons and properties.
func NewManager(persons *book.PersonBook, properties *book.PropertyBook, prefs UserPrefs) *Manager {
	m := &Manager{
		persons:    book.NewPersonBookFrom(persons),
		properties: book.NewPropertyBookFrom(properties),
		prefs:      prefs,
	}
	m.filteredPersons = book.NewFilteredList[types.Person](m.persons)
	m.filteredProperties = book.NewFilteredList[types.Property](m.properties)
	return m
}

func (m *Manager) UserPrefs() UserPrefs { return m.prefs }

func (m *Manager) SetUserPrefs(prefs UserPrefs) { m.prefs = prefs }

func (m *Manager) ResetData() {
	m.persons.Reset()
	m.properties.Reset()
	m.filteredPersons.SetPredicate(nil)
	m.filteredProperties.SetPredicate(nil)
}

func (m *Manager) PersonBook() *book.PersonBook { return m.persons }

func (m *Manager) HasPerson(p types.Person) bool { return m.persons.HasPerson(p) }

// AddPerson adds p and resets the person filter so the new entry is visible.
func (m *Manager) AddPerson(p types.Person) error {
	if err := m.persons.AddPerson(p); err != nil {
		return err
	}
	m.filteredPersons.SetPredicate(nil)
	return nil
}

func (m *Manager) DeletePerson(p types.Person) error { return m.persons.RemovePerson(p) }

func (m *Manager) SetPerson(target, edited types.Person) error {
	return m.persons.SetPerson(target, edited)
}

func (m *Manager) FilteredPersons() []types.Person { return m.filteredPersons.Items() }

func (m *Manager) UpdateFilteredPersons(predicate func(types.Person) bool) {
	m.filteredPersons.SetPredicate(predicate)
}

func (m *Manager) PropertyBook() *book.PropertyBook { return m.properties }

func (m *Manager) HasProperty(p types.Property) bool { return m.properties.HasProperty(p) }

// AddProperty adds p and resets the property filter so the new entry is visible.
func (m *Manager) AddProperty(p types.Property) error {
	if err := m.properties.AddProperty(p); err != nil {
		return err
	}
	m.filteredProperties.SetPredicate(nil)
	return nil
}

func (m *Manager) DeleteProperty(p types.Property) error { return m.properties.RemoveProperty(p) }

func (m *Manager) SetProperty(target, edited types.Property) error {
	return m.properties.SetProperty(target, edited)
}

func (m *Manager) FilteredProperties() []types.Property { return m.filteredProperties.Items() }

func (m *Manager) UpdateFilteredProperties(predicate func(types.Property) bool) {
	m.filteredProperties.SetPredicate(predicate)
}

// Equal reports whether both managers hold equal books, preferences and
// filtered views.
func (m *Manager) Equal(o *Manager) bool {
	return m.persons.Equal(o.persons) &&
		m.properties.Equal(o.properties) &&
		m.prefs == o.prefs &&
		slices.EqualFunc(m.FilteredPersons(), o.FilteredPersons(), types.Person.Equal) &&
		slices.EqualFunc(m.FilteredProperties(), o.FilteredProperties(), types.Property.Equal)
}
