package storage

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/pkg/types"
)

// MessageMissingField is the conversion message for an absent required field.
const MessageMissingField = "%s's %s field is missing!"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRecord runs the struct tag checks on r and reports the first failure
// as a missing-field error naming entity.
func checkRecord(entity string, r any) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		// Namespace is "<Struct>.<json path>"; drop the struct name.
		_, field, _ := strings.Cut(verrs[0].Namespace(), ".")
		return &MissingFieldError{Entity: entity, Field: field}
	}
	return err
}

// MissingFieldError reports a stored record without a required field.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf(MessageMissingField, e.Entity, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return types.ErrMissingField
}

// PersonRecord is the stored form of a person.
type PersonRecord struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// NewPersonRecord returns the stored form of p.
func NewPersonRecord(p types.Person) PersonRecord {
	return PersonRecord{
		Name:  p.Name().String(),
		Phone: p.Phone().String(),
		Email: p.Email().String(),
	}
}

// ToModel converts the record into a Person.
func (r PersonRecord) ToModel() (types.Person, error) {
	if err := checkRecord("Person", r); err != nil {
		return types.Person{}, err
	}
	name, err := types.NewName(r.Name)
	if err != nil {
		return types.Person{}, err
	}
	phone, err := types.NewPhone(r.Phone)
	if err != nil {
		return types.Person{}, err
	}
	email, err := types.NewEmail(r.Email)
	if err != nil {
		return types.Person{}, err
	}
	return types.NewPerson(name, phone, email)
}

// OwnerRecord is the stored form of a property owner.
type OwnerRecord struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone,omitempty"`
}

// PropertyRecord is the stored form of a property. Older files carry the
// seller as a plain string in Seller instead of Owner.
type PropertyRecord struct {
	Name            string       `json:"name" validate:"required"`
	Price           string       `json:"price" validate:"required"`
	Address         string       `json:"address" validate:"required"`
	Description     string       `json:"description" validate:"required"`
	Owner           *OwnerRecord `json:"owner,omitempty" validate:"required_without=Seller"`
	Seller          string       `json:"seller,omitempty"`
	Characteristics string       `json:"characteristics,omitempty"`
}

// NewPropertyRecord returns the stored form of p.
func NewPropertyRecord(p types.Property) PropertyRecord {
	owner := &OwnerRecord{Name: p.Owner().Name().String()}
	if phone, ok := p.Owner().Phone().Get(); ok {
		owner.Phone = phone.String()
	}
	r := PropertyRecord{
		Name:        p.Name().String(),
		Price:       p.Price().String(),
		Address:     p.Address().String(),
		Description: p.Description().String(),
		Owner:       owner,
	}
	if c, ok := p.Characteristics().Get(); ok {
		r.Characteristics = c.String()
	}
	return r
}

// ToModel converts the record into a Property. A legacy Seller string is
// used only when Owner is absent.
func (r PropertyRecord) ToModel() (types.Property, error) {
	if err := checkRecord("Property", r); err != nil {
		return types.Property{}, err
	}
	name, err := types.NewPropertyName(r.Name)
	if err != nil {
		return types.Property{}, err
	}
	price, err := types.NewPrice(r.Price)
	if err != nil {
		return types.Property{}, err
	}
	address, err := types.NewAddress(r.Address)
	if err != nil {
		return types.Property{}, err
	}
	description, err := types.NewDescription(r.Description)
	if err != nil {
		return types.Property{}, err
	}
	owner, err := r.owner()
	if err != nil {
		return types.Property{}, err
	}
	characteristics := types.None[types.Characteristics]()
	if r.Characteristics != "" {
		c, err := types.NewCharacteristics(r.Characteristics)
		if err != nil {
			return types.Property{}, err
		}
		characteristics = types.Some(c)
	}
	return types.NewProperty(name, price, address, description, owner, characteristics)
}

func (r PropertyRecord) owner() (types.Owner, error) {
	if r.Owner == nil {
		return types.ParseLegacySeller(r.Seller)
	}
	name, err := types.NewName(r.Owner.Name)
	if err != nil {
		return types.Owner{}, err
	}
	phone := types.None[types.Phone]()
	if r.Owner.Phone != "" {
		p, err := types.NewPhone(r.Owner.Phone)
		if err != nil {
			return types.Owner{}, err
		}
		phone = types.Some(p)
	}
	return types.NewOwner(name, phone)
}

// PersonBookFromRecords converts records into a PersonBook. Any invalid
// record or duplicate person fails the whole conversion.
func PersonBookFromRecords(records []PersonRecord) (*book.PersonBook, error) {
	b := book.NewPersonBook()
	for i, r := range records {
		p, err := r.ToModel()
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", i+1, err)
		}
		if b.HasPerson(p) {
			return nil, ErrDuplicatePerson
		}
		if err := b.AddPerson(p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// PersonRecords returns the stored form of every person in b.
func PersonRecords(b *book.PersonBook) []PersonRecord {
	persons := b.Persons()
	records := make([]PersonRecord, 0, len(persons))
	for _, p := range persons {
		records = append(records, NewPersonRecord(p))
	}
	return records
}

// PropertyBookFromRecords converts records into a PropertyBook. Any invalid
// record or duplicate property fails the whole conversion.
func PropertyBookFromRecords(records []PropertyRecord) (*book.PropertyBook, error) {
	b := book.NewPropertyBook()
	for i, r := range records {
		p, err := r.ToModel()
		if err != nil {
			return nil, fmt.Errorf("property %d: %w", i+1, err)
		}
		if b.HasProperty(p) {
			return nil, ErrDuplicateProperty
		}
		if err := b.AddProperty(p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// PropertyRecords returns the stored form of every property in b.
func PropertyRecords(b *book.PropertyBook) []PropertyRecord {
	properties := b.Properties()
	records := make([]PropertyRecord, 0, len(properties))
	for _, p := range properties {
		records = append(records, NewPropertyRecord(p))
	}
	return records
}
