package model

import (
	"encoding/json"
	"errors"
)

// DefaultUpstreamMessage is used when the analytics service answers with an
// error but gives no usable detail text
const DefaultUpstreamMessage = "Error from ML service"

// UpstreamError means the analytics service answered with a non-2xx status
type UpstreamError struct {
	Status int
	// Detail is the upstream "detail" text when it is a non-empty string
	Detail string
	// Body is the raw upstream body when it was valid JSON, nil otherwise
	Body json.RawMessage
}

func (e *UpstreamError) Error() string {
	return e.Message()
}

// Message is the text shown to clients for this error
func (e *UpstreamError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return DefaultUpstreamMessage
}

// HasBody reports whether the upstream answered with a structured body
func (e *UpstreamError) HasBody() bool {
	return len(e.Body) > 0
}

// TransportError means no response was received at all
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func AsUpstreamError(err error) (*UpstreamError, bool) {
	var target *UpstreamError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func IsUpstreamError(err error) bool {
	_, ok := AsUpstreamError(err)
	return ok
}

func AsTransportError(err error) (*TransportError, bool) {
	var target *TransportError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func IsTransportError(err error) bool {
	_, ok := AsTransportError(err)
	return ok
}

// newUpstreamError classifies a non-2xx response body. Only a string
// "detail" field is used as message text.
func newUpstreamError(status int, body []byte) *UpstreamError {
	ue := &UpstreamError{Status: status}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return ue
	}
	ue.Body = json.RawMessage(body)

	var detail string
	if len(payload.Detail) > 0 && json.Unmarshal(payload.Detail, &detail) == nil {
		ue.Detail = detail
	}
	return ue
}
