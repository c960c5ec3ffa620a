package geoavail

import (
	"errors"
	"fmt"
)

// Sentinel errors, comparable with errors.Is the way the reference corpus's
// in-memory repositories expose errors like ErrDriverNotFound.
var (
	// ErrInvalidInput is returned for a malformed geohash, a polygon with
	// fewer than 3 vertices, or a non-finite lat/lon.
	ErrInvalidInput = errors.New("geoavail: invalid input")
	// ErrOutOfRange is returned when a latitude or longitude falls outside
	// [-90, 90] / [-180, 180].
	ErrOutOfRange = errors.New("geoavail: value out of range")
	// ErrResourceExhausted is the sentinel for an allocation failure. No
	// operation of Index returns it.
	ErrResourceExhausted = errors.New("geoavail: resource exhausted")
)

func wrapInvalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func wrapOutOfRange(msg string) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, msg)
}
