package auth

import (
	"errors"
)

// Domain errors. Handlers map these to HTTP statuses at the boundary;
// anything unrecognized becomes a 500 with a generic message.
var (
	// ErrInvalidPhoneNumber is returned when the input contains no digits at all
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// ErrUnregisteredNumber is returned from send when no identity is linked
	// to the number. No code is generated or stored for unknown numbers.
	ErrUnregisteredNumber = errors.New("number not registered")

	// ErrIdentityNotFound is returned from verify when the identity lookup
	// comes back empty
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrAmbiguousIdentity is returned when the identity store yields more
	// than one user for a single contact number. The store is expected to
	// guarantee uniqueness; a violation is surfaced loudly, never resolved
	// by picking a row.
	ErrAmbiguousIdentity = errors.New("ambiguous identity for contact number")

	// ErrInvalidOrExpiredOTP covers a missing record, a code mismatch and a
	// lapsed expiry. The three causes are intentionally indistinguishable to
	// the caller.
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")

	// ErrDeliveryFailure is returned when the WhatsApp channel rejects the
	// message or is unreachable
	ErrDeliveryFailure = errors.New("failed to deliver OTP")

	// ErrInvalidOrigin is returned when an admin submits a malformed origin
	ErrInvalidOrigin = errors.New("invalid origin")
)
