// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// official configuration host.
//
// The primary abstraction is [UpstreamAdapter], which decouples the service
// layer from the underlying HTTP client. The package ships a resty-based
// implementation ([NewHTTPUpstreamAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrInvalidJSON] for a body that does not parse).
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upstream_adapter_mock.go -package=mock

// UpstreamAdapter fetches documents from the official configuration host.
// Implementations perform a single attempt per call: no retry, no cache.
type UpstreamAdapter interface {
	// FetchJSON issues one GET against url, which is either absolute or
	// relative to the configured upstream base URL. The body is returned
	// verbatim once it is confirmed to be a single valid JSON value.
	FetchJSON(ctx context.Context, url string) (json.RawMessage, error)

	// ResolveRedirect issues one HEAD against url without following
	// redirects and returns the Location header of the response, or an empty
	// string if there is none.
	ResolveRedirect(ctx context.Context, url string) (string, error)
}
