package book

import (
	"fmt"

	"github.com/mesh-intelligence/estatebook/pkg/types"
)

// PropertyBook is the ordered collection of property listings. Properties
// with the same name and price are duplicates.
type PropertyBook struct {
	properties *UniqueList[types.Property]
}

// NewPropertyBook returns an empty PropertyBook.
func NewPropertyBook() *PropertyBook {
	return &PropertyBook{
		properties: NewUniqueList(types.Property.IsSameProperty, types.Property.Equal),
	}
}

// NewPropertyBookFrom returns a PropertyBook holding a copy of src's properties.
func NewPropertyBookFrom(src *PropertyBook) *PropertyBook {
	b := NewPropertyBook()
	b.properties.items = src.properties.Items()
	return b
}

// HasProperty reports whether a property with the same identity exists.
func (b *PropertyBook) HasProperty(p types.Property) bool {
	return b.properties.Contains(p)
}

// AddProperty appends p. Returns an error wrapping ErrDuplicate if a
// property with the same name and price exists.
func (b *PropertyBook) AddProperty(p types.Property) error {
	if err := b.properties.Add(p); err != nil {
		return fmt.Errorf("add property %q: %w", p.Name(), err)
	}
	return nil
}

// SetProperty replaces target with edited in place.
func (b *PropertyBook) SetProperty(target, edited types.Property) error {
	if err := b.properties.Set(target, edited); err != nil {
		return fmt.Errorf("set property %q: %w", target.Name(), err)
	}
	return nil
}

// RemoveProperty deletes p. Returns an error wrapping ErrNotFound if absent.
func (b *PropertyBook) RemoveProperty(p types.Property) error {
	if err := b.properties.Remove(p); err != nil {
		return fmt.Errorf("remove property %q: %w", p.Name(), err)
	}
	return nil
}

// SetProperties replaces the contents of the book.
func (b *PropertyBook) SetProperties(properties []types.Property) error {
	if err := b.properties.SetAll(properties); err != nil {
		return fmt.Errorf("set properties: %w", err)
	}
	return nil
}

// Properties returns the properties in list order.
func (b *PropertyBook) Properties() []types.Property {
	return b.properties.Items()
}

// Reset removes every property.
func (b *PropertyBook) Reset() {
	b.properties.Clear()
}

// OnChange registers fn to be called after every change to the book.
func (b *PropertyBook) OnChange(fn func()) {
	b.properties.OnChange(fn)
}

// Items implements Source.
func (b *PropertyBook) Items() []types.Property {
	return b.properties.Items()
}

// Len returns the number of properties.
func (b *PropertyBook) Len() int {
	return b.properties.Len()
}

// Equal reports whether both books hold equal properties in the same order.
func (b *PropertyBook) Equal(o *PropertyBook) bool {
	return b.properties.Equal(o.properties)
}
