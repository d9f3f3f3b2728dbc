package rsvp

import "errors"

// Sentinel errors for the RSVP service layer. Validation errors are
// recoverable by the caller resubmitting corrected data; ErrPartyNotFound
// is distinguishable from transport/store failures.
var (
	ErrQueryTooShort   = errors.New("please enter at least 2 characters")
	ErrPartyNotFound   = errors.New("no invitation found for that name")
	ErrNoGuests        = errors.New("guest list cannot be empty")
	ErrInvalidEmail    = errors.New("please enter a valid email address")
	ErrInvalidPhone    = errors.New("please enter a valid phone number")
	ErrConsentRequired = errors.New("contact consent is required")
	ErrPlusOneName     = errors.New("please provide a name for each attending guest")
)

// IsValidation reports whether err is a user-correctable validation error.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrQueryTooShort),
		errors.Is(err, ErrNoGuests),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidPhone),
		errors.Is(err, ErrConsentRequired),
		errors.Is(err, ErrPlusOneName):
		return true
	}
	return false
}
