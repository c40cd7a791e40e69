package handler

import (
	"errors"
	"net/http"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
)

// errorStatus maps domain errors to HTTP codes; 500 means unexpected.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidOption),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrConfigurationMismatch),
		errors.Is(err, entities.ErrCarModelMismatch),
		errors.Is(err, entities.ErrModelInactive):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrCarNotAvailable),
		errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrIdempotencyKeyReused):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
