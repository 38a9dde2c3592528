package testutil

import (
	"github.com/mesh-intelligence/estatebook/pkg/types"
)

// Default field values used by the builders.
const (
	DefaultPropertyName = "Peak Residence"
	DefaultPrice        = "3000000"
	DefaultAddress      = "333 Thompson Road"
	DefaultDescription  = "A 5-storey condo on top of a hill - " +
		"Peak Residence offers you serenity away from the hustle and bustle with breathtaking views all around."
	DefaultOwnerName  = "John Doe"
	DefaultOwnerPhone = "94351253"

	DefaultPersonName  = "Amy Bee"
	DefaultPersonPhone = "85355255"
	DefaultPersonEmail = "amy@gmail.com"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// PropertyBuilder builds Property values for tests.
type PropertyBuilder struct {
	name            types.PropertyName
	price           types.Price
	address         types.Address
	description     types.Description
	owner           types.Owner
	characteristics types.Optional[types.Characteristics]
}

// NewPropertyBuilder returns a builder holding the default property.
func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		name:        must(types.NewPropertyName(DefaultPropertyName)),
		price:       must(types.NewPrice(DefaultPrice)),
		address:     must(types.NewAddress(DefaultAddress)),
		description: must(types.NewDescription(DefaultDescription)),
		owner: must(types.NewOwner(
			must(types.NewName(DefaultOwnerName)),
			types.Some(must(types.NewPhone(DefaultOwnerPhone))),
		)),
	}
}

// PropertyBuilderFrom returns a builder initialised with p's fields.
func PropertyBuilderFrom(p types.Property) *PropertyBuilder {
	return &PropertyBuilder{
		name:            p.Name(),
		price:           p.Price(),
		address:         p.Address(),
		description:     p.Description(),
		owner:           p.Owner(),
		characteristics: p.Characteristics(),
	}
}

func (b *PropertyBuilder) WithName(name string) *PropertyBuilder {
	b.name = must(types.NewPropertyName(name))
	return b
}

func (b *PropertyBuilder) WithPrice(price string) *PropertyBuilder {
	b.price = must(types.NewPrice(price))
	return b
}

func (b *PropertyBuilder) WithAddress(address string) *PropertyBuilder {
	b.address = must(types.NewAddress(address))
	return b
}

func (b *PropertyBuilder) WithDescription(description string) *PropertyBuilder {
	b.description = must(types.NewDescription(description))
	return b
}

// WithOwner sets the owner. An empty phone leaves the owner without one.
func (b *PropertyBuilder) WithOwner(name, phone string) *PropertyBuilder {
	p := types.None[types.Phone]()
	if phone != "" {
		p = types.Some(must(types.NewPhone(phone)))
	}
	b.owner = must(types.NewOwner(must(types.NewName(name)), p))
	return b
}

func (b *PropertyBuilder) WithCharacteristics(characteristics string) *PropertyBuilder {
	b.characteristics = types.Some(must(types.NewCharacteristics(characteristics)))
	return b
}

func (b *PropertyBuilder) WithNoCharacteristics() *PropertyBuilder {
	b.characteristics = types.None[types.Characteristics]()
	return b
}

// Build returns the Property.
func (b *PropertyBuilder) Build() types.Property {
	return must(types.NewProperty(b.name, b.price, b.address, b.description, b.owner, b.characteristics))
}

// PersonBuilder builds Person values for tests.
type PersonBuilder struct {
	name  types.Name
	phone types.Phone
	email types.Email
}

// NewPersonBuilder returns a builder holding the default person.
func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{
		name:  must(types.NewName(DefaultPersonName)),
		phone: must(types.NewPhone(DefaultPersonPhone)),
		email: must(types.NewEmail(DefaultPersonEmail)),
	}
}

// PersonBuilderFrom returns a builder initialised with p's fields.
func PersonBuilderFrom(p types.Person) *PersonBuilder {
	return &PersonBuilder{name: p.Name(), phone: p.Phone(), email: p.Email()}
}

func (b *PersonBuilder) WithName(name string) *PersonBuilder {
	b.name = must(types.NewName(name))
	return b
}

func (b *PersonBuilder) WithPhone(phone string) *PersonBuilder {
	b.phone = must(types.NewPhone(phone))
	return b
}

func (b *PersonBuilder) WithEmail(email string) *PersonBuilder {
	b.email = must(types.NewEmail(email))
	return b
}

// Build returns the Person.
func (b *PersonBuilder) Build() types.Person {
	return must(types.NewPerson(b.name, b.phone, b.email))
}
