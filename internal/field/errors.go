package field

import "errors"

// ErrTypeMismatch is returned when a date field reads a present value that is
// not date-like. The data layer is expected to cast such columns to dates.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrInvalidRange is returned when a submitted range is not a [min, max] pair.
var ErrInvalidRange = errors.New("invalid date range")
