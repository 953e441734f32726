// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Errors returned by [Document] accessors. They describe configuration
// authoring defects, never transient faults.
var (
	// ErrMissingKey is returned when a required key is absent from the
	// configuration document.
	ErrMissingKey = errors.New("missing key in configuration document")

	// ErrUnexpectedType is returned when a key is present but holds a value of
	// a different JSON type than the caller requires.
	ErrUnexpectedType = errors.New("unexpected value type in configuration document")

	// ErrInvalidJSON is returned when raw bytes are not a valid JSON document.
	ErrInvalidJSON = errors.New("invalid json")
)
