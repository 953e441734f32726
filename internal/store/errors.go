package store

import "errors"

// Sentinel errors returned by storages. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrDocumentNotFound is returned when the configuration document does not
	// exist at the configured path.
	ErrDocumentNotFound = errors.New("config document not found")

	// ErrMalformedDocument is returned when the configuration document exists
	// but is not a valid JSON value.
	ErrMalformedDocument = errors.New("config document is malformed")

	// ErrDocumentNotSaved is returned when the document could not be persisted.
	// The previous content stays in place.
	ErrDocumentNotSaved = errors.New("config document was not saved")

	ErrClientDownloadNotSaved = errors.New("client download url was not saved")
)
