package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-game-conf/internal/logger"
)

type clientDownloadFileStorage struct {
	path   string
	logger *logger.Logger
}

// NewClientDownloadFileStorage returns a [ClientDownloadStorage] that keeps
// the URL as the whole content of a plain text file.
func NewClientDownloadFileStorage(path string, logger *logger.Logger) ClientDownloadStorage {
	return &clientDownloadFileStorage{
		path:   path,
		logger: logger,
	}
}

func (s *clientDownloadFileStorage) SaveClientDownloadURL(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := atomicWriteFile(s.path, []byte(url), 0o644); err != nil {
		s.logger.Err(err).Str("path", s.path).Msg("error saving client download url")
		return fmt.Errorf("%w: %w", ErrClientDownloadNotSaved, err)
	}

	s.logger.Info().Str("path", s.path).Str("url", url).Msg("client download url saved")
	return nil
}
