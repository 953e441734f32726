package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient whose requests are bounded
// by timeout. A non-positive timeout leaves resty's default (none).
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// WithoutRedirects makes the client stop at the first response instead of
// following Location headers, so that the redirect target can be inspected.
func (c *HTTPClient) WithoutRedirects() *HTTPClient {
	c.SetRedirectPolicy(noRedirectPolicy{})
	return c
}

type noRedirectPolicy struct{}

func (noRedirectPolicy) Apply(_ *http.Request, _ []*http.Request) error {
	return http.ErrUseLastResponse
}
