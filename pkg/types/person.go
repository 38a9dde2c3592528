package types

import "strings"

// Person is a buyer tracked in the person book.
type Person struct {
	name  Name
	phone Phone
	email Email
}

// NewPerson assembles a Person. All fields are required.
func NewPerson(name Name, phone Phone, email Email) (Person, error) {
	if err := requireAll(
		requiredField{"name", name},
		requiredField{"phone", phone},
		requiredField{"email", email},
	); err != nil {
		return Person{}, err
	}
	return Person{name: name, phone: phone, email: email}, nil
}

func (p Person) Name() Name { return p.name }
func (p Person) Phone() Phone { return p.phone }
func (p Person) Email() Email { return p.email }

// IsSamePerson reports whether both persons have the same name.
// This is the weak notion of equality used to reject duplicates.
func (p Person) IsSamePerson(o Person) bool {
	return p.name.Equal(o.name)
}

// Equal reports whether both persons have the same identity and data fields.
func (p Person) Equal(o Person) bool {
	return p.name.Equal(o.name) && p.phone.Equal(o.phone) && p.email.Equal(o.email)
}

func (p Person) String() string {
	var b strings.Builder
	b.WriteString(p.name.String())
	b.WriteString("; Phone: ")
	b.WriteString(p.phone.String())
	b.WriteString("; Email: ")
	b.WriteString(p.email.String())
	return b.String()
}
