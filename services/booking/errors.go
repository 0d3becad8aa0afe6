package booking

import "fmt"

// BookingError carries a machine-readable code alongside the user-facing message.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewDateUnavailableError(msg string) error {
	return &BookingError{
		Code:    "dateUnavailable",
		Message: msg,
	}
}

func NewDateTooFarAheadError(msg string) error {
	return &BookingError{
		Code:    "dateTooFarAhead",
		Message: msg,
	}
}

func NewSlotUnavailableError(msg string) error {
	return &BookingError{
		Code:    "slotUnavailable",
		Message: msg,
	}
}

func NewSessionNotFoundError(msg string) error {
	return &BookingError{
		Code:    "sessionNotFound",
		Message: msg,
	}
}

func NewValidationError(msg string) error {
	return &BookingError{
		Code:    "validationFailed",
		Message: msg,
	}
}
