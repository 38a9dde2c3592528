package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	empty := None[string]()
	v, ok := empty.Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, "fallback", empty.OrElse("fallback"))

	held := Some("value")
	assert.True(t, held.IsPresent())
	assert.Equal(t, "value", held.OrElse("fallback"))

	var zero Optional[int]
	assert.False(t, zero.IsPresent(), "zero Optional must be empty")
}

func TestOptionalEqual(t *testing.T) {
	a, _ := NewPhone("123")
	b, _ := NewPhone("456")

	assert.True(t, OptionalEqual(None[Phone](), None[Phone]()))
	assert.True(t, OptionalEqual(Some(a), Some(a)))
	assert.False(t, OptionalEqual(Some(a), Some(b)))
	assert.False(t, OptionalEqual(Some(a), None[Phone]()))
	assert.False(t, OptionalEqual(None[Phone](), Some(a)))
}
