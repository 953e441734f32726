// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-game-conf/internal/adapter"
	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/store"
)

const clientPackageSuffix = ".apk"

// ClientDownloadWorker resolves the URL of the latest client package once
// and records it. Every failure is logged and otherwise ignored.
type ClientDownloadWorker struct {
	url      string
	upstream adapter.UpstreamAdapter
	storage  store.ClientDownloadStorage

	logger *logger.Logger
}

func NewClientDownloadWorker(url string, upstream adapter.UpstreamAdapter, storage store.ClientDownloadStorage, logger *logger.Logger) *ClientDownloadWorker {
	return &ClientDownloadWorker{
		url:      url,
		upstream: upstream,
		storage:  storage,
		logger:   logger,
	}
}

func (w *ClientDownloadWorker) Run(ctx context.Context) {
	log := w.logger.GetChildLogger()

	location, err := w.upstream.ResolveRedirect(ctx, w.url)
	if err != nil {
		log.Err(err).Str("url", w.url).Msg("error resolving latest client download")
		return
	}

	if !strings.HasSuffix(location, clientPackageSuffix) {
		log.Warn().Str("url", w.url).Str("location", location).Msg("latest client download is not a package")
		return
	}

	if err = w.storage.SaveClientDownloadURL(ctx, location); err != nil {
		log.Err(err).Msg("error saving latest client download")
		return
	}

	log.Info().Str("location", location).Msg("latest client download resolved")
}
