package rest

import (
	"context"
	"errors"
	"net/http"

	"bobTheBar/domain"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// StatusFromError maps service errors onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBottleNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstreamFailure):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(c echo.Context, err error) error {
	status := StatusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	return c.JSON(status, ResponseError{Message: msg})
}

// NewValidator returns a validator that knows the catalog enums as
// spirit_type, flavor and region tags.
func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("spirit_type", func(fl validator.FieldLevel) bool {
		return domain.SpiritType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("flavor", func(fl validator.FieldLevel) bool {
		return domain.Flavor(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return domain.Region(fl.Field().String()).Valid()
	})

	return v
}
