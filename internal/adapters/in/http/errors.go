package http

import (
	"errors"
	"net/http"

	"mandi/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator used by the server.
func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validator.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("requestBody", err)
	}
	return nil
}

// statusOf maps a typed domain error to an HTTP status. Malformed input is a
// 400, unknown objects a 404, forbidden roles a 403 and every workflow or
// consistency rejection a 409: the request was well formed but the current
// state does not admit it.
func statusOf(err error) int {
	var (
		required  *errs.ValueIsRequiredError
		invalid   *errs.ValueIsInvalidError
		outRange  *errs.ValueIsOutOfRangeError
		notFound  *errs.ObjectNotFoundError
		forbidden *errs.UnauthorizedError
	)

	switch {
	case errors.As(err, &required), errors.As(err, &invalid), errors.As(err, &outRange):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	}

	var (
		transition *errs.InvalidTransitionError
		delegation *errs.IncompleteDelegationError
		ownership  *errs.FieldOwnershipViolationError
		variety    *errs.VarietyMismatchError
		conflict   *errs.ConcurrencyConflictError
	)

	switch {
	case errors.As(err, &transition),
		errors.As(err, &delegation),
		errors.As(err, &ownership),
		errors.As(err, &variety),
		errors.As(err, &conflict):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// respondError writes the error response for a failed request.
func respondError(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
