package handler

import (
	"errors"
	"net/http"
	"usdcdash/internal/core"

	"github.com/jellydator/validation"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs),
		errors.Is(err, core.ErrInvalidFilter),
		errors.Is(err, core.ErrInvalidTransfer):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrUnauthorized),
		errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrIncorrectPassword):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrTransactionNotFound),
		errors.Is(err, core.ErrTransferNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, core.ErrSourceUnavailable),
		errors.Is(err, core.ErrSignatureRejected),
		errors.Is(err, core.ErrBroadcastFailed):
		return http.StatusBadGateway
	case errors.Is(err, core.ErrTransfersDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse exposes the error text for every status but 500.
func errorResponse(message string, err error) (Response, int) {
	code := statusFor(err)
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if fields, ok := core.FieldErrors(err); ok {
		resp.Fields = fields
	}
	if code == http.StatusInternalServerError {
		resp.Error = "unexpected error occurred"
	}
	return resp, code
}
