package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a request-terminating failure with the HTTP status it should
// surface as. Every boundary operation converts its own failures into one of
// these; anything else reaching the response writer is treated as a 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusConflict, message)
}

func Unprocessable(message string) *Error {
	return New(fiber.StatusUnprocessableEntity, message)
}

// Shared failure values compared with errors.Is across service and
// repository boundaries.
var (
	ErrInvalidCredentials = BadRequest("Email or password is incorrect")
	ErrOTPExpired         = BadRequest("OTP expired")
	ErrMailDelivery       = BadRequest("Error on sending to email address")
	ErrRefreshExpired     = BadRequest("Refresh token expired")
	ErrInvalidToken       = BadRequest("Invalid token")
	ErrInvalidID          = BadRequest("Invalid id")
	ErrInsufficientStock  = BadRequest("Insufficient product quantity")
	ErrForbidden          = Forbidden("Forbidden user")
)

// StatusOf maps err to the HTTP status it should produce.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}

	return fiber.StatusInternalServerError
}

// MessageOf returns the user-visible message for err. Non-application errors
// are masked so internals never leak into a response body.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}

	return "Internal server error"
}
