package util

import "errors"

var (
	ErrConflict     = errors.New("user already exists")
	ErrUnauthorized = errors.New("invalid email or password")
	ErrForbidden    = errors.New("permission denied")
	ErrNotFound     = errors.New("resource not found")
	ErrIneligible   = errors.New("need 5+ small gifts to unlock big motivator")
	ErrInvalidParam = errors.New("invalid parameter")

	// Both are reported as missing resources by errors.Is(err, ErrNotFound).
	ErrUnknownTopic = &kindError{msg: "invalid topic", kind: ErrNotFound}
	ErrNoInventory  = &kindError{msg: "no rewards available", kind: ErrNotFound}
)

// kindError is a sentinel with its own message that also matches a broader kind.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
