package domain

import "errors"

var (
	// ErrPhoneNotFound is returned when no catalog record matches a name lookup
	ErrPhoneNotFound = errors.New("phone not found in catalog")

	// ErrInvalidQuestion is returned when the question text is empty or too short
	ErrInvalidQuestion = errors.New("question must be at least 3 characters")

	// ErrStoreUnavailable is returned when the phone store cannot be reached
	ErrStoreUnavailable = errors.New("phone store unavailable")

	// ErrGeneratorUnavailable is returned when no generative backend is configured
	ErrGeneratorUnavailable = errors.New("no generator backend available")

	// ErrGeneratorQuota is returned when a generative backend rejects for quota/rate reasons
	ErrGeneratorQuota = errors.New("generator quota exceeded")

	// ErrGeneratorFailure is returned for any other generative backend failure
	ErrGeneratorFailure = errors.New("generator request failed")
)
