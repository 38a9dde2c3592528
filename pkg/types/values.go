package types

import (
	"regexp"
	"strings"
)

// Constraint messages shown when raw input fails validation.
const (
	MessageNameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

	MessagePhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"

	MessageEmailConstraints = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
		"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

	MessageAddressConstraints = "Addresses can take any values, and it should not be blank"
)

var (
	nameRegexp  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRegexp = regexp.MustCompile(`^\d{3,}$`)
	emailRegexp = regexp.MustCompile(
		`^[A-Za-z0-9]([A-Za-z0-9+_.\-]*[A-Za-z0-9])?` +
			`@([A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?\.)*` +
			`[A-Za-z0-9][A-Za-z0-9\-]*[A-Za-z0-9]$`)
)

// Name is a person's or owner's name.
type Name struct {
	value string
}

// NewName validates raw and returns a Name holding its trimmed form.
func NewName(raw string) (Name, error) {
	v := strings.TrimSpace(raw)
	if !IsValidName(v) {
		return Name{}, invalid("name", MessageNameConstraints)
	}
	return Name{value: v}, nil
}

// IsValidName reports whether s is a valid name.
func IsValidName(s string) bool {
	return nameRegexp.MatchString(s)
}

func (n Name) String() string { return n.value }
func (n Name) IsZero() bool { return n.value == "" }
func (n Name) Equal(o Name) bool { return n.value == o.value }

// Phone is a phone number of at least three digits.
type Phone struct {
	value string
}

// NewPhone validates raw and returns a Phone holding its trimmed form.
func NewPhone(raw string) (Phone, error) {
	v := strings.TrimSpace(raw)
	if !IsValidPhone(v) {
		return Phone{}, invalid("phone", MessagePhoneConstraints)
	}
	return Phone{value: v}, nil
}

// IsValidPhone reports whether s is a valid phone number.
func IsValidPhone(s string) bool {
	return phoneRegexp.MatchString(s)
}

func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool { return p.value == "" }
func (p Phone) Equal(o Phone) bool { return p.value == o.value }

// Email is an email address.
type Email struct {
	value string
}

// NewEmail validates raw and returns an Email holding its trimmed form.
func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	if !IsValidEmail(v) {
		return Email{}, invalid("email", MessageEmailConstraints)
	}
	return Email{value: v}, nil
}

// IsValidEmail reports whether s is a valid email address.
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

func (e Email) String() string { return e.value }
func (e Email) IsZero() bool { return e.value == "" }
func (e Email) Equal(o Email) bool { return e.value == o.value }

// Address is a free-form, non-blank street address.
type Address struct {
	value string
}

// NewAddress validates raw and returns an Address holding its trimmed form.
func NewAddress(raw string) (Address, error) {
	v := strings.TrimSpace(raw)
	if !IsValidAddress(v) {
		return Address{}, invalid("address", MessageAddressConstraints)
	}
	return Address{value: v}, nil
}

// IsValidAddress reports whether s is a valid address.
func IsValidAddress(s string) bool {
	return strings.TrimSpace(s) != ""
}

func (a Address) String() string { return a.value }
func (a Address) IsZero() bool { return a.value == "" }
func (a Address) Equal(o Address) bool { return a.value == o.value }
