package adapter

import "errors"

var (
	// ErrRequestFailed is returned when the request never produced a response
	// (DNS, connect, timeout, cancelled context).
	ErrRequestFailed = errors.New("upstream request failed")

	ErrBadRequest          = errors.New("upstream rejected the request")
	ErrNotFound            = errors.New("upstream resource not found")
	ErrInternalServerError = errors.New("upstream internal server error")
	ErrBadGateway          = errors.New("upstream bad gateway")
	ErrUnavailable         = errors.New("upstream temporarily unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected upstream status")

	// ErrInvalidJSON is returned when a successful response body is not a
	// single valid JSON value.
	ErrInvalidJSON = errors.New("upstream returned invalid JSON")
)
