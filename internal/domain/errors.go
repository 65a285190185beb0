package domain

import "errors"

// Sentinel errors shared across services. Controllers map these to stable
// API error codes; anything else is treated as an internal error.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already in use")

	// Invalid-state conditions: the request is well-formed and authorized in
	// principle, but the current store state forbids it.
	ErrWeekInactive    = errors.New("week is inactive")
	ErrWeekNotInactive = errors.New("week is not marked as inactive")
	ErrDuplicateSignup = errors.New("already signed up for this meeting")
	ErrAlreadyAdmin    = errors.New("user is already an admin")
	ErrNotAdmin        = errors.New("user is not an admin")
	ErrSelfRemoval     = errors.New("cannot remove yourself as admin")
)

var clientErrors = []error{
	ErrNotAuthenticated, ErrForbidden, ErrNotFound, ErrInvalidInput,
	ErrInvalidCredentials, ErrDuplicateEmail,
	ErrWeekInactive, ErrWeekNotInactive, ErrDuplicateSignup,
	ErrAlreadyAdmin, ErrNotAdmin, ErrSelfRemoval,
}

// IsClientError reports whether err wraps one of the sentinels above, i.e.
// the request failed for a reason the caller can act on. Everything else is
// an internal fault worth logging.
func IsClientError(err error) bool {
	for _, sentinel := range clientErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
