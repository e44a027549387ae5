package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateID       = errors.New("duplicate recipe id")
	ErrUnknownCategory   = errors.New("unknown tag category")
	ErrNoCatalog         = errors.New("no catalog files matched")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
