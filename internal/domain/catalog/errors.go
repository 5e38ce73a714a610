package catalog

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrEmptyCatalog    = errors.New("catalog is empty")
	ErrInvalidMethod   = errors.New("invalid method")
	ErrIndexOutOfRange = errors.New("index out of range")
)
