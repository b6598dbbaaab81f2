package catalog

import "errors"

// Domain-specific errors for the catalog package.
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrRideNotFound       = errors.New("ride not found")
	ErrUnknownCategory    = errors.New("unknown knowledge base category")
	ErrCategoryNotMapping = errors.New("knowledge base category is not a mapping")
)
