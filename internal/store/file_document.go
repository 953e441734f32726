// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/models"
	"github.com/tidwall/pretty"
)

// documentPrettyOptions fixes the on-disk layout: 4-space indentation, sorted
// keys and one array element per line, so that two writes of the same
// document are byte-identical. Width 0 disables single-line arrays.
var documentPrettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "    ",
	SortKeys: true,
}

// documentFileStorage is the file-backed implementation of [DocumentStore].
//
// All operations are serialized by mu, which makes [documentFileStorage.Update]
// a proper read-modify-write. Writes go to a temporary file in the same
// directory followed by a rename, so a reader never observes a partially
// written document.
type documentFileStorage struct {
	mu     sync.Mutex
	path   string
	logger *logger.Logger
}

// NewDocumentFileStorage returns a [DocumentStore] persisting to path.
// The file is not touched until the first operation.
func NewDocumentFileStorage(path string, logger *logger.Logger) DocumentStore {
	return &documentFileStorage{
		path:   path,
		logger: logger,
	}
}

func (s *documentFileStorage) Read(ctx context.Context) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read(ctx)
}

func (s *documentFileStorage) Write(ctx context.Context, doc models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(ctx, doc)
}

func (s *documentFileStorage) Update(ctx context.Context, fn func(models.Document) (models.Document, error)) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read(ctx)
	if err != nil {
		return models.Document{}, err
	}

	updated, err := fn(current)
	if err != nil {
		return models.Document{}, err
	}

	if err = s.write(ctx, updated); err != nil {
		return models.Document{}, err
	}

	return s.read(ctx)
}

func (s *documentFileStorage) read(ctx context.Context) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Error().Str("path", s.path).Msg("config document does not exist")
		return models.Document{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, s.path)
	}
	if err != nil {
		s.logger.Err(err).Str("path", s.path).Msg("error reading config document")
		return models.Document{}, fmt.Errorf("error reading config document: %w", err)
	}

	doc, err := models.NewDocument(raw)
	if err != nil {
		s.logger.Err(err).Str("path", s.path).Msg("config document is not valid JSON")
		return models.Document{}, fmt.Errorf("%w: %s", ErrMalformedDocument, s.path)
	}

	return doc, nil
}

func (s *documentFileStorage) write(ctx context.Context, doc models.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := pretty.PrettyOptions(doc.Raw(), documentPrettyOptions)

	if err := atomicWriteFile(s.path, data, 0o644); err != nil {
		s.logger.Err(err).Str("path", s.path).Msg("error writing config document")
		return fmt.Errorf("%w: %w", ErrDocumentNotSaved, err)
	}

	s.logger.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("config document saved")
	return nil
}

// atomicWriteFile writes data next to path and renames it into place.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err = tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err = tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}
