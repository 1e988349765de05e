package okcoinex

import "fmt"

// Error is implemented by errors that carry an exchange error code.
type Error interface {
	error
	Code() int
}

// ApiError means the exchange answered at the transport level but flagged
// the request with a domain error code.
type ApiError struct {
	ErrCode int
	Message string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.ErrCode, e.Message)
}

func (e *ApiError) Code() int {
	return e.ErrCode
}

// NewApiError creates a new API error with a code and a message
func NewApiError(code int, message string, args ...interface{}) Error {
	if len(args) > 0 {
		return &ApiError{code, fmt.Sprintf(message, args...)}
	}
	return &ApiError{code, message}
}

// TransportError means the network call itself failed. The underlying
// error is surfaced verbatim, never retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s", e.Err.Error())
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError means the response body was not valid json. The raw body is
// kept for diagnosis.
type ParseError struct {
	Raw []byte
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s, raw: %s", e.Err.Error(), string(e.Raw))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
