package store

import (
	"context"

	"github.com/MKhiriev/go-game-conf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentStore is the single source of truth for the configuration document.
// Every Read goes to the backing medium; every Write persists immediately.
type DocumentStore interface {
	Read(ctx context.Context) (models.Document, error)
	Write(ctx context.Context, doc models.Document) error
	// Update runs read, fn, write and re-read as one step that no other Write
	// or Update can interleave with. If fn returns an error nothing is written.
	Update(ctx context.Context, fn func(models.Document) (models.Document, error)) (models.Document, error)
}

// ClientDownloadStorage keeps the last resolved client package URL.
type ClientDownloadStorage interface {
	SaveClientDownloadURL(ctx context.Context, url string) error
}
