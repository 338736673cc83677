package biomarket

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when a referenced product has no row in the warehouse.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidQuantity is returned when a sale is recorded with a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrEmptyName is returned when a product name is empty after trimming.
	ErrEmptyName = errors.New("product name must be a non-empty string")

	// ErrNegativeQuantity is returned when a product is created with a negative quantity.
	ErrNegativeQuantity = errors.New("quantity must be a non-negative integer")

	// ErrNegativePrice is returned when a product is created with a negative price.
	ErrNegativePrice = errors.New("price must be a non-negative amount")
)

// StorageError reports a failed file operation on a table file.
// It wraps the underlying I/O error.
type StorageError struct {
	Op   string // "create", "read", "write" or "append"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("cannot %s table file %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// InsufficientQuantityError reports a stock decrement that would drive the
// quantity below zero. The warehouse is left unchanged when it is returned.
type InsufficientQuantityError struct {
	Product   string
	Available int
	Requested int
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("insufficient quantity for %q: available %d, requested %d", e.Product, e.Available, e.Requested)
}
