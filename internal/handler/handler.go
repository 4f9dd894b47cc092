// Package handler exposes the services over HTTP. Paths and JSON keys follow the
// frontend contract (Spanish field names).
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"integraservicios/internal/errors"
)

// MessageResponse is the body of endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// bindAndValidate decodes the request into req and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error(), "VALIDATION_FAILED")
	}
	return nil
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, badRequest("invalid "+name, "INVALID_ID")
	}
	return uint(id), nil
}

// httpError renders a service error with its kind's status code.
func httpError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// businessError renders a rule failure of the reservation and ledger endpoints as 400.
func businessError(err error) error {
	httpErr := errors.BusinessRuleHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
