package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProperty(t *testing.T, name, price, address, description, seller string, characteristics string) Property {
	t.Helper()
	n, err := NewPropertyName(name)
	require.NoError(t, err)
	p, err := NewPrice(price)
	require.NoError(t, err)
	a, err := NewAddress(address)
	require.NoError(t, err)
	d, err := NewDescription(description)
	require.NoError(t, err)
	o, err := ParseLegacySeller(seller)
	require.NoError(t, err)
	c := None[Characteristics]()
	if characteristics != "" {
		cs, err := NewCharacteristics(characteristics)
		require.NoError(t, err)
		c = Some(cs)
	}
	prop, err := NewProperty(n, p, a, d, o, c)
	require.NoError(t, err)
	return prop
}

func TestNewPrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "3000000", want: "3000000"},
		{raw: "0", want: "0"},
		{raw: "1250.5", want: "1250.5"},
		{raw: " 99.99 ", want: "99.99"},
		{raw: "", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "1.234", wantErr: true},
		{raw: "one million", wantErr: true},
		{raw: "1,000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NewPrice(tt.raw)
			if tt.wantErr {
				assert.EqualError(t, err, MessagePriceConstraints)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewPropertyName(t *testing.T) {
	for _, raw := range []string{"Peak Residence", "D'Leedon", "The Sail", "Parc Esta, Block 3"} {
		_, err := NewPropertyName(raw)
		assert.NoError(t, err, raw)
	}
	for _, raw := range []string{"", " ", "-Peak", "Peak*"} {
		_, err := NewPropertyName(raw)
		assert.EqualError(t, err, MessagePropertyNameConstraints, raw)
	}
}

func TestNewCharacteristics(t *testing.T) {
	c, err := NewCharacteristics(" Bright;North-facing ;  Near MRT")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bright", "North-facing", "Near MRT"}, c.Entries())
	assert.Equal(t, "Bright; North-facing; Near MRT", c.String())

	again, err := NewCharacteristics(c.String())
	require.NoError(t, err)
	assert.True(t, c.Equal(again), "normalised form must round-trip")

	for _, raw := range []string{"", "  ", "Bright;", ";Bright", "Bright;;Quiet"} {
		_, err := NewCharacteristics(raw)
		assert.EqualError(t, err, MessageCharacteristicsConstraints, raw)
	}
}

func TestNewPropertyMissingField(t *testing.T) {
	n, _ := NewPropertyName("Peak Residence")
	p, _ := NewPrice("3000000")
	a, _ := NewAddress("333 Thompson Road")
	o, _ := ParseLegacySeller("John Doe")

	_, err := NewProperty(n, p, a, Description{}, o, None[Characteristics]())
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "description")

	_, err = NewProperty(n, p, a, Description{value: "x"}, Owner{}, None[Characteristics]())
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestPropertyIsSameProperty(t *testing.T) {
	peak := mustProperty(t, "Peak Residence", "3000000", "333 Thompson Road", "Condo", "John Doe", "")

	tests := []struct {
		name  string
		other Property
		want  bool
	}{
		{"same object", peak, true},
		{"different data fields", mustProperty(t, "Peak Residence", "3000000", "1 Other Road", "Other", "Jane Roe", "Bright"), true},
		{"different name", mustProperty(t, "Peak Tower", "3000000", "333 Thompson Road", "Condo", "John Doe", ""), false},
		{"different price", mustProperty(t, "Peak Residence", "2500000", "333 Thompson Road", "Condo", "John Doe", ""), false},
		{"name differs in case", mustProperty(t, "peak residence", "3000000", "333 Thompson Road", "Condo", "John Doe", ""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, peak.IsSameProperty(tt.other))
		})
	}
}

func TestPropertyEqual(t *testing.T) {
	peak := mustProperty(t, "Peak Residence", "3000000", "333 Thompson Road", "Condo", "John Doe", "Bright")
	copyOfPeak := mustProperty(t, "Peak Residence", "3000000", "333 Thompson Road", "Condo", "John Doe", "Bright")

	assert.True(t, peak.Equal(copyOfPeak))
	assert.False(t, peak.Equal(mustProperty(t, "Peak Residence", "3000000", "1 Other Road", "Condo", "John Doe", "Bright")))
	assert.False(t, peak.Equal(mustProperty(t, "Peak Residence", "3000000", "333 Thompson Road", "Loft", "John Doe", "Bright")))
	assert.False(t, peak.Equal(mustProperty(t, "Peak Residence", "3000000", "333 Thompson Road", "Condo", "Jane Roe", "Bright")))
	assert.False(t, peak.Equal(mustProperty(t, "Peak Residence", "3000000", "333 Thompson Road", "Condo", "John Doe", "")))
	assert.False(t, peak.Equal(mustProperty(t, "Peak Residence", "3000000", "333 Thompson Road", "Condo", "John Doe", "Dim")))
}

func TestPropertyString(t *testing.T) {
	peak := mustProperty(t, "Peak Residence", "3000000", "333 Thompson Road", "A condo on a hill", "John Doe", "")
	assert.Equal(t,
		"Peak Residence; Address: 333 Thompson Road; Price: 3000000; Description: A condo on a hill; "+
			"Seller: John Doe; Characteristics: Not Specified",
		peak.String())

	bright := mustProperty(t, "Peak Residence", "3000000", "333 Thompson Road", "A condo on a hill", "John Doe", "Bright;Quiet")
	assert.Contains(t, bright.String(), "Characteristics: Bright; Quiet")
}

func TestOwner(t *testing.T) {
	name, err := NewName("John Doe")
	require.NoError(t, err)
	phone, err := NewPhone("94351253")
	require.NoError(t, err)

	withPhone, err := NewOwner(name, Some(phone))
	require.NoError(t, err)
	assert.Equal(t, "John Doe (94351253)", withPhone.String())

	legacy, err := ParseLegacySeller("  John Doe ")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", legacy.String())
	assert.False(t, legacy.Phone().IsPresent())
	assert.False(t, legacy.Equal(withPhone))

	split, err := ParseLegacySeller("John Doe 94351253")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", split.Name().String())
	assert.True(t, split.Equal(withPhone))

	// Too short to be a phone, so it stays in the name.
	short, err := ParseLegacySeller("Tower 12")
	require.NoError(t, err)
	assert.Equal(t, "Tower 12", short.Name().String())
	assert.False(t, short.Phone().IsPresent())

	_, err = NewOwner(Name{}, None[Phone]())
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = ParseLegacySeller("John*")
	assert.ErrorIs(t, err, ErrInvalidValue)
}
