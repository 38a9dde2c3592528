package testutil

import (
	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/pkg/types"
)

// Typical persons.
var (
	Alice  = NewPersonBuilder().WithName("Alice Pauline").WithPhone("94351253").WithEmail("alice@example.com").Build()
	Benson = NewPersonBuilder().WithName("Benson Meier").WithPhone("98765432").WithEmail("johnd@example.com").Build()
	Carl   = NewPersonBuilder().WithName("Carl Kurz").WithPhone("95352563").WithEmail("heinz@example.com").Build()
	Daniel = NewPersonBuilder().WithName("Daniel Meier").WithPhone("87652533").WithEmail("cornelia@example.com").Build()

	// Not in the typical book.
	Hoon = NewPersonBuilder().WithName("Hoon Meier").WithPhone("8482424").WithEmail("stefan@example.com").Build()
)

// Typical properties.
var (
	Peak = NewPropertyBuilder().Build()

	Bishan = NewPropertyBuilder().WithName("Bishan Loft").WithPrice("1250000").
		WithAddress("9 Bishan Place").WithDescription("Loft unit near the park").
		WithOwner("Mary Tan", "91112222").WithCharacteristics("Bright;Near MRT").Build()

	Clementi = NewPropertyBuilder().WithName("Clementi Crest").WithPrice("890000.50").
		WithAddress("21 Clementi Ave 4").WithDescription("Three-room flat").
		WithOwner("Raj Kumar", "").Build()

	// Not in the typical book.
	Dover = NewPropertyBuilder().WithName("Dover Parkview").WithPrice("760000").
		WithAddress("10 Dover Rise").WithDescription("Corner unit").WithOwner("Lim Wei", "93334444").Build()
)

// TypicalPersons returns the typical persons in book order.
func TypicalPersons() []types.Person {
	return []types.Person{Alice, Benson, Carl, Daniel}
}

// TypicalProperties returns the typical properties in book order.
func TypicalProperties() []types.Property {
	return []types.Property{Peak, Bishan, Clementi}
}

// TypicalPersonBook returns a PersonBook holding the typical persons.
func TypicalPersonBook() *book.PersonBook {
	b := book.NewPersonBook()
	for _, p := range TypicalPersons() {
		if err := b.AddPerson(p); err != nil {
			panic(err)
		}
	}
	return b
}

// TypicalPropertyBook returns a PropertyBook holding the typical properties.
func TypicalPropertyBook() *book.PropertyBook {
	b := book.NewPropertyBook()
	for _, p := range TypicalProperties() {
		if err := b.AddProperty(p); err != nil {
			panic(err)
		}
	}
	return b
}
