package http

import (
	"errors"
	"net/http"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response wrapper for every API endpoint.
type envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
}

// pagination describes the window of a paged listing together with the
// unpaginated total.
type pagination struct {
	Skip  int   `json:"skip"`
	Take  int   `json:"take"`
	Total int64 `json:"total"`
}

// respond writes a successful envelope with the given status code.
func respond(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, envelope{Success: true, Data: data})
}

// respondPage writes a successful envelope with pagination metadata.
func respondPage(ctx echo.Context, data any, skip, take int, total int64) error {
	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Pagination: &pagination{
			Skip:  skip,
			Take:  take,
			Total: total,
		},
	})
}

// respondError maps a domain error onto the API status code convention:
// 404 for missing objects, 409 for conflicts, 400 for validation failures,
// 500 for everything else.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, envelope{Success: false, Error: err.Error()})
}

// respondBadRequest writes a 400 envelope for malformed requests that never
// reach the domain.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Error: message})
}
