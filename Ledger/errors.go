package Ledger

import (
	"github.com/gofiber/fiber/v2"
)

// StatusError is an error carrying the HTTP status the handler should
// answer with. Anything without a status is treated as 500.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func ValidationError(message string) error {
	return &StatusError{Code: fiber.StatusBadRequest, Message: message}
}

func NotFoundError(message string) error {
	return &StatusError{Code: fiber.StatusNotFound, Message: message}
}

func ConflictError(message string) error {
	return &StatusError{Code: fiber.StatusConflict, Message: message}
}

func InsufficientStockError(itemName string) error {
	return &StatusError{Code: fiber.StatusBadRequest, Message: "Insufficient stock for " + itemName}
}

// StatusOf extracts the HTTP status from an error.
func StatusOf(err error) int {
	if se, ok := err.(*StatusError); ok {
		return se.Code
	}
	return fiber.StatusInternalServerError
}
