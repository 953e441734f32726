package workers

import (
	"context"

	"github.com/MKhiriev/go-game-conf/internal/adapter"
	"github.com/MKhiriev/go-game-conf/internal/config"
	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled in cfg.
func NewWorkers(cfg *config.StructuredConfig, storages *store.Storages, upstream adapter.UpstreamAdapter, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.Workers.ResolveClientDownload && storages.ClientDownloadStorage != nil {
		ws.workers = append(ws.workers, NewClientDownloadWorker(
			cfg.Adapter.ClientDownloadURL,
			upstream,
			storages.ClientDownloadStorage,
			logger,
		))
	}

	logger.Debug().Int("workers", len(ws.workers)).Msg("workers created")
	return ws
}

// Run runs every worker in order and returns when the last one is done.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		if ctx.Err() != nil {
			return
		}
		worker.Run(ctx)
	}
}
