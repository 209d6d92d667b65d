package domain

import "errors"

var (
	// ErrMalformedImageURL is returned when no archetype key can be derived from an image URL
	ErrMalformedImageURL = errors.New("malformed image URL: no archetype key")
)
