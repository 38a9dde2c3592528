package types

import (
	"regexp"
	"slices"
	"strings"
)

// Constraint messages for property value objects.
const (
	MessagePropertyNameConstraints = "Property names should start with a letter or digit and only contain " +
		"alphanumeric characters, spaces and the characters ' & . , -"

	MessagePriceConstraints = "Price should be a non-negative number with at most 2 decimal places"

	MessageDescriptionConstraints = "Descriptions can take any values, and it should not be blank"

	MessageCharacteristicsConstraints = "Characteristics should be a list of non-blank entries separated by ';'"
)

// characteristicsSeparator splits raw characteristics input into entries.
const characteristicsSeparator = ";"

var (
	propertyNameRegexp = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} '&.,\-]*$`)
	priceRegexp        = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

// PropertyName is the display name of a property listing.
type PropertyName struct {
	value string
}

// NewPropertyName validates raw and returns a PropertyName holding its trimmed form.
func NewPropertyName(raw string) (PropertyName, error) {
	v := strings.TrimSpace(raw)
	if !propertyNameRegexp.MatchString(v) {
		return PropertyName{}, invalid("property name", MessagePropertyNameConstraints)
	}
	return PropertyName{value: v}, nil
}

func (n PropertyName) String() string { return n.value }
func (n PropertyName) IsZero() bool { return n.value == "" }
func (n PropertyName) Equal(o PropertyName) bool { return n.value == o.value }

// Price is a non-negative asking price kept in its textual form.
type Price struct {
	value string
}

// NewPrice validates raw and returns a Price holding its trimmed form.
func NewPrice(raw string) (Price, error) {
	v := strings.TrimSpace(raw)
	if !priceRegexp.MatchString(v) {
		return Price{}, invalid("price", MessagePriceConstraints)
	}
	return Price{value: v}, nil
}

func (p Price) String() string { return p.value }
func (p Price) IsZero() bool { return p.value == "" }
func (p Price) Equal(o Price) bool { return p.value == o.value }

// Description is a free-form, non-blank property description.
type Description struct {
	value string
}

// NewDescription validates raw and returns a Description holding its trimmed form.
func NewDescription(raw string) (Description, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Description{}, invalid("description", MessageDescriptionConstraints)
	}
	return Description{value: v}, nil
}

func (d Description) String() string { return d.value }
func (d Description) IsZero() bool { return d.value == "" }
func (d Description) Equal(o Description) bool { return d.value == o.value }

// Characteristics is an ordered list of property features such as
// "Bright" or "North-facing".
type Characteristics struct {
	entries []string
}

// NewCharacteristics splits raw on ';' and trims every entry. Every entry
// must be non-blank.
func NewCharacteristics(raw string) (Characteristics, error) {
	parts := strings.Split(raw, characteristicsSeparator)
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		e := strings.TrimSpace(p)
		if e == "" {
			return Characteristics{}, invalid("characteristics", MessageCharacteristicsConstraints)
		}
		entries = append(entries, e)
	}
	return Characteristics{entries: entries}, nil
}

// Entries returns a copy of the characteristic entries in input order.
func (c Characteristics) Entries() []string {
	return slices.Clone(c.entries)
}

func (c Characteristics) String() string {
	return strings.Join(c.entries, characteristicsSeparator+" ")
}

func (c Characteristics) IsZero() bool { return len(c.entries) == 0 }
func (c Characteristics) Equal(o Characteristics) bool { return slices.Equal(c.entries, o.entries) }

// notSpecified is displayed in place of absent optional values.
const notSpecified = "Not Specified"

// Property is a real-estate listing. Properties are immutable; edits
// replace the whole record.
type Property struct {
	name            PropertyName
	price           Price
	address         Address
	description     Description
	owner           Owner
	characteristics Optional[Characteristics]
}

// NewProperty assembles a Property. Every field except characteristics is
// required; a zero value object yields an error wrapping ErrMissingField.
func NewProperty(name PropertyName, price Price, address Address, description Description,
	owner Owner, characteristics Optional[Characteristics]) (Property, error) {
	if err := requireAll(
		requiredField{"name", name},
		requiredField{"price", price},
		requiredField{"address", address},
		requiredField{"description", description},
		requiredField{"owner", owner},
	); err != nil {
		return Property{}, err
	}
	return Property{
		name:            name,
		price:           price,
		address:         address,
		description:     description,
		owner:           owner,
		characteristics: characteristics,
	}, nil
}

func (p Property) Name() PropertyName { return p.name }
func (p Property) Price() Price { return p.price }
func (p Property) Address() Address { return p.address }
func (p Property) Description() Description { return p.description }
func (p Property) Owner() Owner { return p.owner }
func (p Property) Characteristics() Optional[Characteristics] { return p.characteristics }

// IsSameProperty reports whether both properties have the same name and
// price. This is the weak notion of equality used to reject duplicates.
func (p Property) IsSameProperty(o Property) bool {
	return p.name.Equal(o.name) && p.price.Equal(o.price)
}

// Equal reports whether both properties have the same identity and data fields.
func (p Property) Equal(o Property) bool {
	return p.IsSameProperty(o) &&
		p.address.Equal(o.address) &&
		p.description.Equal(o.description) &&
		p.owner.Equal(o.owner) &&
		OptionalEqual(p.characteristics, o.characteristics)
}

func (p Property) String() string {
	var b strings.Builder
	b.WriteString(p.name.String())
	b.WriteString("; Address: ")
	b.WriteString(p.address.String())
	b.WriteString("; Price: ")
	b.WriteString(p.price.String())
	b.WriteString("; Description: ")
	b.WriteString(p.description.String())
	b.WriteString("; Seller: ")
	b.WriteString(p.owner.String())
	b.WriteString("; Characteristics: ")
	if c, ok := p.characteristics.Get(); ok {
		b.WriteString(c.String())
	} else {
		b.WriteString(notSpecified)
	}
	return b.String()
}
