package book

import (
	"fmt"

	"github.com/mesh-intelligence/estatebook/pkg/types"
)

// PersonBook is the ordered collection of buyers. Persons with the same
// name are duplicates.
type PersonBook struct {
	persons *UniqueList[types.Person]
}

// NewPersonBook returns an empty PersonBook.
func NewPersonBook() *PersonBook {
	return &PersonBook{
		persons: NewUniqueList(types.Person.IsSamePerson, types.Person.Equal),
	}
}

// NewPersonBookFrom returns a PersonBook holding a copy of src's persons.
func NewPersonBookFrom(src *PersonBook) *PersonBook {
	b := NewPersonBook()
	b.persons.items = src.persons.Items()
	return b
}

// HasPerson reports whether a person with the same identity exists.
func (b *PersonBook) HasPerson(p types.Person) bool {
	return b.persons.Contains(p)
}

// AddPerson appends p. Returns an error wrapping ErrDuplicate if a person
// with the same name exists.
func (b *PersonBook) AddPerson(p types.Person) error {
	if err := b.persons.Add(p); err != nil {
		return fmt.Errorf("add person %q: %w", p.Name(), err)
	}
	return nil
}

// SetPerson replaces target with edited in place.
func (b *PersonBook) SetPerson(target, edited types.Person) error {
	if err := b.persons.Set(target, edited); err != nil {
		return fmt.Errorf("set person %q: %w", target.Name(), err)
	}
	return nil
}

// RemovePerson deletes p. Returns an error wrapping ErrNotFound if absent.
func (b *PersonBook) RemovePerson(p types.Person) error {
	if err := b.persons.Remove(p); err != nil {
		return fmt.Errorf("remove person %q: %w", p.Name(), err)
	}
	return nil
}

// SetPersons replaces the contents of the book.
func (b *PersonBook) SetPersons(persons []types.Person) error {
	if err := b.persons.SetAll(persons); err != nil {
		return fmt.Errorf("set persons: %w", err)
	}
	return nil
}

// Persons returns the persons in list order.
func (b *PersonBook) Persons() []types.Person {
	return b.persons.Items()
}

// Reset removes every person.
func (b *PersonBook) Reset() {
	b.persons.Clear()
}

// OnChange registers fn to be called after every change to the book.
func (b *PersonBook) OnChange(fn func()) {
	b.persons.OnChange(fn)
}

// Items implements Source.
func (b *PersonBook) Items() []types.Person {
	return b.persons.Items()
}

// Len returns the number of persons.
func (b *PersonBook) Len() int {
	return b.persons.Len()
}

// Equal reports whether both books hold equal persons in the same order.
func (b *PersonBook) Equal(o *PersonBook) bool {
	return b.persons.Equal(o.persons)
}
