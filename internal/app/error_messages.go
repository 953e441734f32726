// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// game config server handlers.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of failed HTTP responses. The underlying error text goes into
// the "detail" field.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be read
	// or is not valid JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgConfigDocumentUnavailable is returned when the configuration
	// document cannot be read, parsed or saved, or lacks a required key.
	MsgConfigDocumentUnavailable = "config document unavailable"

	// MsgUpstreamUnavailable is returned when the remote config server could
	// not be reached or answered with something unusable.
	MsgUpstreamUnavailable = "upstream config server unavailable"

	// MsgInternalServerError is returned for any other failure.
	MsgInternalServerError = "internal server error"
)
