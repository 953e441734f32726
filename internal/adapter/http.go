package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-game-conf/internal/config"
	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/utils"
	"github.com/tidwall/gjson"
)

type httpUpstreamAdapter struct {
	client   *utils.HTTPClient
	redirect *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUpstreamAdapter constructs a resty-based implementation of
// [UpstreamAdapter]. It normalises and validates cfg.UpstreamURL and bounds
// every request by cfg.RequestTimeout.
//
// Two clients are used: one for GETs that follows redirects like a browser
// would, and one for HEADs that stops at the first response.
func NewHTTPUpstreamAdapter(cfg config.Adapter, logger *logger.Logger) (UpstreamAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.UpstreamURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	redirect := utils.NewHTTPClient(cfg.RequestTimeout).WithoutRedirects()

	return &httpUpstreamAdapter{client: client, redirect: redirect, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchJSON implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) FetchJSON(ctx context.Context, url string) (json.RawMessage, error) {
	log := h.logger.GetChildLogger()
	log.Debug().Str("url", url).Msg("fetching upstream document")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		log.Err(err).Str("url", url).Msg("upstream request failed")
		return nil, fmt.Errorf("%w: GET %s: %w", ErrRequestFailed, url, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("url", url).Int("status", resp.StatusCode()).Msg("upstream responded with error")
		return nil, err
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		log.Error().Str("url", url).Int("bytes", len(body)).Msg("upstream body is not valid JSON")
		return nil, fmt.Errorf("%w: GET %s", ErrInvalidJSON, url)
	}

	out := make(json.RawMessage, len(body))
	copy(out, body)
	return out, nil
}

// ResolveRedirect implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) ResolveRedirect(ctx context.Context, url string) (string, error) {
	resp, err := h.redirect.R().
		SetContext(ctx).
		Head(url)
	if err != nil {
		return "", fmt.Errorf("%w: HEAD %s: %w", ErrRequestFailed, url, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return "", mapHTTPError(resp)
	}

	return resp.Header().Get("Location"), nil
}
