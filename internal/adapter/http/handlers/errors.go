package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"klusmarkt/internal/usecase"
	"klusmarkt/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func mapUseCaseError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", verr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainError("JOB_NOT_FOUND", "Job not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrListingNotFound):
		return pkg.NewDomainError("LISTING_NOT_FOUND", "Listing not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainError("QUOTE_NOT_FOUND", "Quote not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrAgendaItemNotFound):
		return pkg.NewDomainError("AGENDA_ITEM_NOT_FOUND", "Agenda item not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainError("PROFILE_NOT_FOUND", "Profile not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrExternalService):
		return mapExternalError(err)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapExternalError(err error) *pkg.AppError {
	tag, _ := usecase.ExternalTagOf(err)
	switch tag {
	case usecase.TagInvalidCredentials:
		return pkg.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password", err, http.StatusUnauthorized)
	case usecase.TagEmailUnconfirmed:
		return pkg.NewDomainError("EMAIL_UNCONFIRMED", "Email address not confirmed", err, http.StatusForbidden)
	default:
		return pkg.NewDomainError("EXTERNAL_SERVICE_ERROR", "Upstream service failed", err, http.StatusBadGateway)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapUseCaseError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
