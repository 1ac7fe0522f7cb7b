package errors

import (
	"fmt"
	"net/http"

	"github.com/jstrehler/portfolio-backend/logger"
	"github.com/jstrehler/portfolio-backend/types"
)

type ErrorType string

const (
	ValidationError       ErrorType = "VALIDATION_ERROR"
	RateLimitError        ErrorType = "RATE_LIMIT_ERROR"
	MalformedRequestError ErrorType = "MALFORMED_REQUEST"
	DeliveryError         ErrorType = "DELIVERY_ERROR"
	NotFoundError         ErrorType = "NOT_FOUND"
	ServerError           ErrorType = "SERVER_ERROR"
)

// Client-facing messages for the generic error paths. These are part of the
// wire contract and must not leak internal detail.
const (
	MsgValidationFailed = "Validation failed"
	MsgTooManyRequests  = "Too many requests. Please try again later."
	MsgInternalError    = "Internal server error. Please try again later."
)

// AppError represents a structured application error.
type AppError struct {
	Type       ErrorType          `json:"type"`
	Message    string             `json:"message"`
	Detail     string             `json:"detail,omitempty"`
	Fields     []types.FieldError `json:"fields,omitempty"`
	HTTPStatus int                `json:"-"`
	RetryAfter int                `json:"-"` // seconds, rate-limit errors only
	Raw        error              `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code associated with the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.HTTPStatus
}

// ValidationFailed wraps a set of per-field violations. The field list is
// preserved so the client can render errors next to the offending inputs.
func ValidationFailed(fields []types.FieldError) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    MsgValidationFailed,
		Fields:     fields,
		HTTPStatus: http.StatusBadRequest,
	}
}

// RateLimitExceeded signals that a client identifier has exhausted its
// submission window. retryAfter is advisory, surfaced via headers only.
func RateLimitExceeded(retryAfter int) *AppError {
	return &AppError{
		Type:       RateLimitError,
		Message:    MsgTooManyRequests,
		HTTPStatus: http.StatusTooManyRequests,
		RetryAfter: retryAfter,
	}
}

// MalformedRequest covers bodies that could not be parsed at all. The raw
// error is logged server-side; the client sees only the generic message.
func MalformedRequest(err error) *AppError {
	logger.GetLogger().Errorw("Malformed request body", "error", err)
	return &AppError{
		Type:       MalformedRequestError,
		Message:    MsgInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// NewDeliveryError wraps a failure from the email collaborator. Provider
// internals are deliberately not exposed to the caller.
func NewDeliveryError(err error) *AppError {
	logger.GetLogger().Errorw("Email delivery failed", "error", err)
	return &AppError{
		Type:       DeliveryError,
		Message:    MsgInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// NotFound reports a missing catalog entity.
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

// InternalServerError covers unexpected failures with a generic message.
func InternalServerError(err error) *AppError {
	if err != nil {
		logger.GetLogger().Errorw("Internal server error", "error", err)
	}
	return &AppError{
		Type:       ServerError,
		Message:    MsgInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}
