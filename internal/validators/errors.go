package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidField is matched by every field rule violation below.
	ErrInvalidField = errors.New("invalid field")

	ErrEmptyShort      = fieldError("short is required")
	ErrEmptyLong       = fieldError("long is required")
	ErrEmptyName       = fieldError("name is required")
	ErrEmptyUsername   = fieldError("username is required")
	ErrInvalidUsername = fieldError("username must not contain spaces")
	ErrEmptyPassword   = fieldError("password is required")
	ErrShortTooLong    = fieldError("short is too long")
)

type ruleError struct {
	msg string
}

func fieldError(msg string) error {
	return &ruleError{msg: msg}
}

func (e *ruleError) Error() string {
	return e.msg
}

func (e *ruleError) Unwrap() error {
	return ErrInvalidField
}
