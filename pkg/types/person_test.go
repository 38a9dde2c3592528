package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPerson(t *testing.T, name, phone, email string) Person {
	t.Helper()
	n, err := NewName(name)
	require.NoError(t, err)
	p, err := NewPhone(phone)
	require.NoError(t, err)
	e, err := NewEmail(email)
	require.NoError(t, err)
	person, err := NewPerson(n, p, e)
	require.NoError(t, err)
	return person
}

func TestPersonEquality(t *testing.T) {
	alice := mustPerson(t, "Alice Tan", "94351253", "alice@example.com")

	tests := []struct {
		name      string
		other     Person
		wantSame  bool
		wantEqual bool
	}{
		{"identical", mustPerson(t, "Alice Tan", "94351253", "alice@example.com"), true, true},
		{"different phone", mustPerson(t, "Alice Tan", "91234567", "alice@example.com"), true, false},
		{"different email", mustPerson(t, "Alice Tan", "94351253", "tan@example.com"), true, false},
		{"different name", mustPerson(t, "Alice Lim", "94351253", "alice@example.com"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSame, alice.IsSamePerson(tt.other))
			assert.Equal(t, tt.wantEqual, alice.Equal(tt.other))
		})
	}
}

func TestNewPersonMissingField(t *testing.T) {
	n, _ := NewName("Alice Tan")
	p, _ := NewPhone("94351253")
	_, err := NewPerson(n, p, Email{})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestPersonString(t *testing.T) {
	alice := mustPerson(t, "Alice Tan", "94351253", "alice@example.com")
	assert.Equal(t, "Alice Tan; Phone: 94351253; Email: alice@example.com", alice.String())
}

func TestNameContainsKeywords(t *testing.T) {
	alice := mustPerson(t, "Alice Tan", "94351253", "alice@example.com")
	bob := mustPerson(t, "Bob Lee", "98765432", "bob@example.com")

	tests := []struct {
		name     string
		keywords []string
		want     []Person
	}{
		{"single keyword", []string{"Alice"}, []Person{alice}},
		{"case insensitive", []string{"aLIce"}, []Person{alice}},
		{"multiple keywords", []string{"Tan", "Lee"}, []Person{alice, bob}},
		{"partial word does not match", []string{"Ali"}, nil},
		{"no keywords", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := NameContainsKeywords{Keywords: tt.keywords}
			var got []Person
			for _, p := range []Person{alice, bob} {
				if pred.Test(p) {
					got = append(got, p)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertyNameContainsKeywords(t *testing.T) {
	peak := mustProperty(t, "Peak Residence", "3000000", "333 Thompson Road", "Condo", "John Doe", "")
	pred := PropertyNameContainsKeywords{Keywords: []string{"residence"}}
	assert.True(t, pred.Test(peak))
	assert.False(t, PropertyNameContainsKeywords{Keywords: []string{"Tower"}}.Test(peak))
}
