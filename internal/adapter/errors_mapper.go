package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrUnavailable,
	http.StatusGatewayTimeout:      ErrUnavailable,
}

// mapHTTPError turns a non-2xx upstream response into one of the package
// errors, carrying a trimmed copy of the body for the logs.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}

	if err, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", err, body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, code, body)
}

const maxErrorBody = 256
