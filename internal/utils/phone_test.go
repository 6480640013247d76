package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain digits", "0123456789", "0123456789"},
		{"international with plus", "+60 12-345 6789", "60123456789"},
		{"dashes and spaces", "012-345 6789", "0123456789"},
		{"letters mixed in", "call 0123456789 now", "0123456789"},
		{"only non-digits", "abc-+ ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizePhone(tt.input))
		})
	}
}

func TestToLocalFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"country code prefix", "60123456789", "0123456789"},
		{"already local", "0123456789", "0123456789"},
		{"bare digits", "123456789", "0123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToLocalFormat(tt.input))
		})
	}
}

func TestToDeliveryFormat(t *testing.T) {
	assert.Equal(t, "60123456789", ToDeliveryFormat("0123456789"))

	// Numbers without a leading zero pass through untouched
	assert.Equal(t, "60123456789", ToDeliveryFormat("60123456789"))
}

func TestPhoneFormatRoundTrip(t *testing.T) {
	// All prefix styles of the same physical number must converge on the same
	// local/delivery pair and share the same trailing digits.
	inputs := []string{"60123456789", "0123456789", "123456789", "+6012-345 6789"}

	for _, input := range inputs {
		sanitized := SanitizePhone(input)
		local := ToLocalFormat(sanitized)
		delivery := ToDeliveryFormat(local)

		assert.Equal(t, "0123456789", local, "input %q", input)
		assert.Equal(t, "60123456789", delivery, "input %q", input)
		assert.True(t, strings.HasSuffix(delivery, "123456789"), "input %q", input)
	}
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "******6789", MaskPhoneNumber("0123456789"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
}
