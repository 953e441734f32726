package store

import (
	"github.com/MKhiriev/go-game-conf/internal/config"
	"github.com/MKhiriev/go-game-conf/internal/logger"
)

// Storages groups the persistence components passed to the service layer.
type Storages struct {
	// DocumentStore holds the configuration document.
	DocumentStore DocumentStore

	// ClientDownloadStorage is nil when no client download path is configured.
	ClientDownloadStorage ClientDownloadStorage
}

// NewStorages builds the file-backed storages described by cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.Document.Path == "" {
		return nil, ErrDocumentNotFound
	}

	storages := &Storages{
		DocumentStore: NewDocumentFileStorage(cfg.Document.Path, logger),
	}

	if cfg.ClientDownload.Path != "" {
		storages.ClientDownloadStorage = NewClientDownloadFileStorage(cfg.ClientDownload.Path, logger)
	}

	return storages, nil
}
