package domain

import (
	"unicode/utf16"

	apperrors "ledgerdesk/internal/platform/errors"
)

const MinPasswordLength = 6

const (
	MsgMissingFields    = "Please fill in all fields"
	MsgPasswordMismatch = "Passwords do not match"
	MsgPasswordTooShort = "Password must be at least 6 characters"
	MsgLoginFailed      = "Login failed. Please try again."
	MsgSignupFailed     = "Signup failed. Please try again."
)

func ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return apperrors.Validation(MsgMissingFields)
	}
	return nil
}

// ValidateSignup checks presence, then confirmation, then length.
func ValidateSignup(email, password, confirm string) error {
	if email == "" || password == "" || confirm == "" {
		return apperrors.Validation(MsgMissingFields)
	}
	if password != confirm {
		return apperrors.Validation(MsgPasswordMismatch)
	}
	if passwordLength(password) < MinPasswordLength {
		return apperrors.Validation(MsgPasswordTooShort)
	}
	return nil
}

// passwordLength counts UTF-16 code units, the unit the API's own length
// rule uses.
func passwordLength(password string) int {
	return len(utf16.Encode([]rune(password)))
}
