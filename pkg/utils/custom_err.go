package utils

import "errors"

var (
	ErrInvalidTrip     = errors.New("invalid trip")
	ErrTripNotFound    = errors.New("trip not found")
	ErrTripStore       = errors.New("trip store error")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
)

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrPlacesBackend     = errors.New("places backend error")
)
