package model

import (
	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/pkg/types"
)

type samplePerson struct {
	name, phone, email string
}

type sampleProperty struct {
	name, price, address, description, owner, ownerPhone, characteristics string
}

var samplePersons = []samplePerson{
	{"Alex Yeoh", "87438807", "alexyeoh@example.com"},
	{"Bernice Yu", "99272758", "berniceyu@example.com"},
	{"Charlotte Oliveiro", "93210283", "charlotte@example.com"},
	{"David Li", "91031282", "lidavid@example.com"},
}

var sampleProperties = []sampleProperty{
	{"Peak Residence", "3000000", "333 Thompson Road",
		"A 5-storey condo on top of a hill with views all around", "John Doe", "94351253", ""},
	{"Bishan Loft", "1250000", "9 Bishan Place",
		"Loft unit next to the park", "Mary Tan", "91112222", "Bright; Near MRT"},
	{"Clementi Crest", "890000", "21 Clementi Ave 4",
		"Three-room flat close to schools", "Raj Kumar", "", "Renovated"},
}

// SamplePersonBook returns the person book used on first run.
func SamplePersonBook() *book.PersonBook {
	b := book.NewPersonBook()
	for _, s := range samplePersons {
		p, err := newSamplePerson(s)
		if err != nil {
			panic(err)
		}
		if err := b.AddPerson(p); err != nil {
			panic(err)
		}
	}
	return b
}

// SamplePropertyBook returns the property book used on first run.
func SamplePropertyBook() *book.PropertyBook {
	b := book.NewPropertyBook()
	for _, s := range sampleProperties {
		p, err := newSampleProperty(s)
		if err != nil {
			panic(err)
		}
		if err := b.AddProperty(p); err != nil {
			panic(err)
		}
	}
	return b
}

func newSamplePerson(s samplePerson) (types.Person, error) {
	name, err := types.NewName(s.name)
	if err != nil {
		return types.Person{}, err
	}
	phone, err := types.NewPhone(s.phone)
	if err != nil {
		return types.Person{}, err
	}
	email, err := types.NewEmail(s.email)
	if err != nil {
		return types.Person{}, err
	}
	return types.NewPerson(name, phone, email)
}

func newSampleProperty(s sampleProperty) (types.Property, error) {
	name, err := types.NewPropertyName(s.name)
	if err != nil {
		return types.Property{}, err
	}
	price, err := types.NewPrice(s.price)
	if err != nil {
		return types.Property{}, err
	}
	address, err := types.NewAddress(s.address)
	if err != nil {
		return types.Property{}, err
	}
	description, err := types.NewDescription(s.description)
	if err != nil {
		return types.Property{}, err
	}
	ownerName, err := types.NewName(s.owner)
	if err != nil {
		return types.Property{}, err
	}
	ownerPhone := types.None[types.Phone]()
	if s.ownerPhone != "" {
		p, err := types.NewPhone(s.ownerPhone)
		if err != nil {
			return types.Property{}, err
		}
		ownerPhone = types.Some(p)
	}
	owner, err := types.NewOwner(ownerName, ownerPhone)
	if err != nil {
		return types.Property{}, err
	}
	characteristics := types.None[types.Characteristics]()
	if s.characteristics != "" {
		c, err := types.NewCharacteristics(s.characteristics)
		if err != nil {
			return types.Property{}, err
		}
		characteristics = types.Some(c)
	}
	return types.NewProperty(name, price, address, description, owner, characteristics)
}
