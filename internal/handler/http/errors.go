package http

import "errors"

// ErrReadingBody is returned when the request body cannot be read, e.g. a
// truncated gzip stream.
var ErrReadingBody = errors.New("error reading request body")
