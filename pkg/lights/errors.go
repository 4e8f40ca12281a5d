package lights

import "errors"

var (
	// ErrInvalidDecay is returned when decay factors could make the
	// attenuation denominator non-positive
	ErrInvalidDecay = errors.New("invalid decay factors")

	// ErrNonFinite is returned when a configured value is NaN or infinite
	ErrNonFinite = errors.New("non-finite value")

	// ErrMissingField is returned when a required builder field was never set
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidDirection is returned for a zero or non-finite light direction
	ErrInvalidDirection = errors.New("invalid light direction")
)
