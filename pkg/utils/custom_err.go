package utils

import "errors"

// Schedule engine errors. All are recoverable at the operation boundary;
// on any of these the Day keeps its last committed state.
var (
	ErrInvalidWindow             = errors.New("event start must be before event end")
	ErrOverlapConflict           = errors.New("event overlaps another event on this day")
	ErrInsufficientEvents        = errors.New("at least 3 events are required to optimize a day")
	ErrMissingLocation           = errors.New("every event needs an address and resolved coordinates")
	ErrRouteTooLong              = errors.New("consecutive events are more than 500 km apart")
	ErrDayOverflow               = errors.New("recalculated schedule exceeds 24 hours")
	ErrProviderUnavailable       = errors.New("routing provider unavailable")
	ErrMalformedProviderResponse = errors.New("routing provider returned a malformed response")
)

var (
	ErrTripNotFound         = errors.New("trip not found")
	ErrDayNotFound          = errors.New("day not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrCollaboratorNotFound = errors.New("no account matches that name or email")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrForbidden            = errors.New("not allowed to modify this trip")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
	ErrDatabaseError        = errors.New("database error")
)
