package types

import (
	"regexp"
	"strings"
)

// legacySellerRegexp splits a trailing phone number off a legacy seller.
var legacySellerRegexp = regexp.MustCompile(`^(.*\S)\s+(\d{3,})$`)

// Owner is the seller of a property. The phone is optional so that legacy
// records holding only a seller name can be normalised into an Owner.
type Owner struct {
	name  Name
	phone Optional[Phone]
}

// NewOwner returns an Owner with the given name and optional phone.
func NewOwner(name Name, phone Optional[Phone]) (Owner, error) {
	if err := requireAll(requiredField{"owner name", name}); err != nil {
		return Owner{}, err
	}
	return Owner{name: name, phone: phone}, nil
}

// ParseLegacySeller normalises the legacy free-text seller form into an
// Owner. A trailing run of three or more digits after whitespace becomes
// the owner's phone; the rest is the name.
func ParseLegacySeller(seller string) (Owner, error) {
	raw := strings.TrimSpace(seller)
	phone := None[Phone]()
	if m := legacySellerRegexp.FindStringSubmatch(raw); m != nil {
		p, err := NewPhone(m[2])
		if err != nil {
			return Owner{}, err
		}
		raw, phone = m[1], Some(p)
	}
	name, err := NewName(raw)
	if err != nil {
		return Owner{}, err
	}
	return Owner{name: name, phone: phone}, nil
}

func (o Owner) Name() Name { return o.name }
func (o Owner) Phone() Optional[Phone] { return o.phone }
func (o Owner) IsZero() bool { return o.name.IsZero() }

// Equal reports whether both owners have the same name and phone.
func (o Owner) Equal(other Owner) bool {
	return o.name.Equal(other.name) && OptionalEqual(o.phone, other.phone)
}

func (o Owner) String() string {
	if p, ok := o.phone.Get(); ok {
		return o.name.String() + " (" + p.String() + ")"
	}
	return o.name.String()
}
