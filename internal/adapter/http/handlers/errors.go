package handlers

import (
	"errors"
	"net/http"

	"aurora_motors/internal/usecase"
	"aurora_motors/internal/usecase/interfaces"
	"aurora_motors/pkg"
)

var (
	errStorageUnavailable = pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage is not available", http.StatusServiceUnavailable)
	errModelNotFound      = pkg.NewDomainErrorSimple("MODEL_NOT_FOUND", "Model not found", http.StatusNotFound)
	errInvalidLead        = pkg.NewDomainErrorSimple("INVALID_LEAD", "Invalid lead payload", http.StatusUnprocessableEntity)
	errInvalidSelection   = pkg.NewDomainErrorSimple("INVALID_SELECTION", "Invalid configuration payload", http.StatusUnprocessableEntity)
	errInvalidQuery       = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return errStorageUnavailable
	case errors.Is(err, usecase.ErrModelNotFound), errors.Is(err, usecase.ErrInvalidSlug):
		return errModelNotFound
	case errors.Is(err, usecase.ErrInvalidLead):
		return errInvalidLead
	case errors.Is(err, usecase.ErrInvalidSelection):
		return errInvalidSelection
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
