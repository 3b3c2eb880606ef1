package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalFloat(t *testing.T) {
	f := ParseOptionalFloat(" 1234.5 ")
	require.NotNil(t, f)
	assert.Equal(t, 1234.5, *f)

	assert.Nil(t, ParseOptionalFloat(""))
	assert.Nil(t, ParseOptionalFloat("   "))
	assert.Nil(t, ParseOptionalFloat("abc"))
	assert.Nil(t, ParseOptionalFloat("12,5"))
}

func TestParseOptionalInt(t *testing.T) {
	i := ParseOptionalInt("3")
	require.NotNil(t, i)
	assert.Equal(t, 3, *i)

	assert.Nil(t, ParseOptionalInt(""))
	assert.Nil(t, ParseOptionalInt("2.5"))
	assert.Nil(t, ParseOptionalInt("three"))
}
