package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"GARCÍA MÁRQUEZ", "garcia marquez"},
		{"El Principito", "el principito"},
		{"ñandú", "nandu"},
		{"", ""},
		{"already plain", "already plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}

func TestStripIdentifier(t *testing.T) {
	assert.Equal(t, "9781234567897", StripIdentifier("978-1-234-56789-7"))
	assert.Equal(t, "9781234567897", StripIdentifier("978 1 234 56789 7"))
	assert.Equal(t, "1234567890", StripIdentifier("1234567890"))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("1234567890"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("123a"))
	assert.False(t, IsDigits("12 34"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "15.000", FormatAmount(15000))
	assert.Equal(t, "1.234.567", FormatAmount(1234567))
	assert.Equal(t, "999", FormatAmount(999))
	assert.Equal(t, "0", FormatAmount(0))
}
