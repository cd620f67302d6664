package session

import (
	"errors"
	"fmt"
)

// ValidationError reports a session that is structurally invalid: a binary
// payload of unknown length, a database whose schema does not match the
// expected format, or a field outside its allowed range. It is never
// recovered from; callers get the error as-is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return "invalid session"
	}
	return "invalid session: " + e.Reason
}

// Validationf builds a ValidationError with a formatted reason.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrUserIDRequired is returned by exports into formats that cannot represent
// a session without an account identity (the tdata folder format).
var ErrUserIDRequired = errors.New("session has no user_id")
