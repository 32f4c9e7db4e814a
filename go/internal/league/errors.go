package league

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned for malformed requests.
	ErrValidation = errors.New("validation failed")
)
