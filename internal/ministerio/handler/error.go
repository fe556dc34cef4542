package handler

import (
	"errors"
	"net/http"

	"ministerios/internal/ministerio/model"
	"ministerios/internal/ministerio/service"

	"github.com/labstack/echo/v4"
)

// Helper to map errors to HTTP status and body
func httpError(c echo.Context, err error) (int, model.ErrorResponse) {
	var code string
	var msg string
	var status int

	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		msg = "Ministerio not found"
	case errors.Is(err, service.ErrValidation):
		status = http.StatusUnprocessableEntity
		code = "validation_error"
		msg = "Rejected by storage constraints"
	case errors.Is(err, service.ErrConnection):
		status = http.StatusServiceUnavailable
		code = "connection_error"
		msg = "Storage backend unreachable"
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = "Internal error"
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg, RequestID: requestID(c)},
	}
}

func validationError(c echo.Context, err error) model.ErrorResponse {
	detail, ok := err.(*model.ErrorDetail)
	if !ok {
		detail = model.FormatValidationError(err)
	}
	resp := model.ErrorResponse{Error: *detail}
	resp.Error.RequestID = requestID(c)
	return resp
}

func badRequest(c echo.Context, msg string) model.ErrorResponse {
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: msg, RequestID: requestID(c)},
	}
}
