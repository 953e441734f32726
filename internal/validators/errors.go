package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownGroup   = errors.New("unknown feature group")
	ErrInvalidMethod  = errors.New("invalid http method")
	ErrInvalidPath    = errors.New("invalid route path")
	ErrMissingHandler = errors.New("feature route has no handler")
	ErrInvalidBody    = errors.New("request body is not valid JSON")
)
