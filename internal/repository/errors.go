package repository

import (
	"errors"
	"fmt"
)

// ErrUnsuccessful is returned when the API answered with "success": false.
var ErrUnsuccessful = errors.New("shop api reported failure")

// unsuccessful keeps the server's message, if any, for diagnostics.
func unsuccessful(op string, status int, message string) error {
	if message == "" {
		return fmt.Errorf("%s: %w (status %d)", op, ErrUnsuccessful, status)
	}
	return fmt.Errorf("%s: %w (status %d): %s", op, ErrUnsuccessful, status, message)
}
