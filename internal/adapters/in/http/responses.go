package http

import (
	"errors"
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response body: {ok, data} on success and
// {ok, error} on failure.
type Envelope struct {
	Ok    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func okEnvelope(data any) Envelope {
	return Envelope{Ok: true, Data: data}
}

func errorEnvelope(message string) Envelope {
	return Envelope{Ok: false, Error: message}
}

func respondOK(c echo.Context, status int, data any) error {
	return c.JSON(status, okEnvelope(data))
}

// respondError maps a domain error to its HTTP status. Unrecognized errors
// are reported as internal without leaking their message.
func respondError(c echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		return c.JSON(status, errorEnvelope("internal error"))
	}
	return c.JSON(status, errorEnvelope(err.Error()))
}

// respondBadRequest reports a request that never made it into a command:
// unreadable body, malformed identifiers, or failed constructor validation.
func respondBadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, errorEnvelope(err.Error()))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, commands.ErrEmailIsTaken):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
