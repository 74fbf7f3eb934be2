package domain

import "errors"

// ErrUnknownKind is returned when a payload kind is not registered.
var ErrUnknownKind = errors.New("unknown payload kind")
