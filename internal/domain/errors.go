package domain

import (
	"errors"
	"fmt"
)

// ClientError is a malformed or missing input detected before any
// upstream call. It always maps to HTTP 400.
type ClientError struct {
	Msg string
}

func (e *ClientError) Error() string {
	return e.Msg
}

func NewClientError(format string, a ...any) error {
	return &ClientError{Msg: fmt.Sprintf(format, a...)}
}

func IsClientError(err error) bool {
	var target *ClientError
	return errors.As(err, &target)
}
