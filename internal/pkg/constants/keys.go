package constants

// Redis key formats
const (
	KeyAuthOTP = "auth:otp:%s" // Format: auth:otp:{sanitized_phone}
)

// NATS subjects for auth events
const (
	SubjectOTPSent           = "auth.otp.sent"
	SubjectUserAuthenticated = "auth.user.authenticated"
)
