package entities

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	ErrUserNotFound          = fmt.Errorf("user %w", ErrNotFound)
	ErrModelNotFound         = fmt.Errorf("model %w", ErrNotFound)
	ErrConfigurationNotFound = fmt.Errorf("configuration %w", ErrNotFound)
	ErrCarNotFound           = fmt.Errorf("car %w", ErrNotFound)
	ErrOrderNotFound         = fmt.Errorf("order %w", ErrNotFound)
)

var (
	ErrInvalidOption         = errors.New("invalid option")
	ErrInvalidQuantity       = errors.New("invalid option quantity")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrModelInactive         = errors.New("model is not available for order")
	ErrConfigurationMismatch = errors.New("configuration belongs to a different model")
	ErrCarModelMismatch      = errors.New("car belongs to a different model")
	ErrCarNotAvailable       = errors.New("car is not available")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrDuplicateRequest      = errors.New("duplicate idempotency key")
	ErrIdempotencyKeyReused  = errors.New("idempotency key belongs to another user")
)
