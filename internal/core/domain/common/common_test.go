package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
}

func TestOptionalSomeAndValueOr(t *testing.T) {
	assert := require.New(t)

	assert.Equal(NewOptional(3, true), Some(3))
	assert.Equal(3, Some(3).ValueOr(7))
	assert.Equal(7, Optional[int]{}.ValueOr(7))
	assert.Equal("[3]", Some(3).String())
	assert.Equal("[-]", Optional[int]{}.String())
}
