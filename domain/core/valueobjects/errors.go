package valueobjects

import "errors"

// ErrInvalidCoordinates is returned when a coordinate is NaN or infinite
var ErrInvalidCoordinates = errors.New("invalid coordinates: must be finite numbers")
