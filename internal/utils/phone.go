package utils

import (
	"strings"
)

// CountryCallingCode is the Malaysian calling code used by the delivery channel
const CountryCallingCode = "60"

// SanitizePhone strips every non-digit character from a raw phone number.
// The sanitized form is the OTP store key. Empty or garbage input degrades to
// an empty string, which callers must reject before use.
func SanitizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToLocalFormat converts a sanitized number to the local '01...' form used for
// identity lookups (the historical storage convention of the agent table).
func ToLocalFormat(sanitized string) string {
	// 60123... -> 0123...
	if strings.HasPrefix(sanitized, CountryCallingCode) {
		return "0" + sanitized[len(CountryCallingCode):]
	}

	// 0123... stays as is
	if strings.HasPrefix(sanitized, "0") {
		return sanitized
	}

	// bare digits without prefix: 123... -> 0123...
	return "0" + sanitized
}

// ToDeliveryFormat converts a local-form number to the '601...' form the
// WhatsApp channel requires
func ToDeliveryFormat(local string) string {
	if strings.HasPrefix(local, "0") {
		return CountryCallingCode + local[1:]
	}
	return local
}

// MaskPhoneNumber masks a phone number for logging, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := SanitizePhone(phone)
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
