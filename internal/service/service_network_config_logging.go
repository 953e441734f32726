package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/models"
)

// NetworkConfigLoggingService logs the outcome and duration of every
// [NetworkConfigService] call that can fail.
type NetworkConfigLoggingService struct {
	inner NetworkConfigService
}

func NewNetworkConfigLoggingService() NetworkConfigServiceWrapper {
	return &NetworkConfigLoggingService{}
}

func (s *NetworkConfigLoggingService) Wrap(inner NetworkConfigService) NetworkConfigService {
	s.inner = inner
	return s
}

func (s *NetworkConfigLoggingService) Version(ctx context.Context) (json.RawMessage, error) {
	start := time.Now()
	version, err := s.inner.Version(ctx)
	logCall(ctx, "Version", start, err)
	return version, err
}

func (s *NetworkConfigLoggingService) NetworkConfig(ctx context.Context) (models.ManifestEnvelope, error) {
	start := time.Now()
	envelope, err := s.inner.NetworkConfig(ctx)
	logCall(ctx, "NetworkConfig", start, err)
	return envelope, err
}

func (s *NetworkConfigLoggingService) RemoteConfig(ctx context.Context) (json.RawMessage, error) {
	start := time.Now()
	remote, err := s.inner.RemoteConfig(ctx)
	logCall(ctx, "RemoteConfig", start, err)
	return remote, err
}

func (s *NetworkConfigLoggingService) RefreshConfig(ctx context.Context) models.RefreshConfig {
	return s.inner.RefreshConfig(ctx)
}

func (s *NetworkConfigLoggingService) Announcement(ctx context.Context) (json.RawMessage, error) {
	start := time.Now()
	announcement, err := s.inner.Announcement(ctx)
	logCall(ctx, "Announcement", start, err)
	return announcement, err
}

func (s *NetworkConfigLoggingService) PreAnnouncement(ctx context.Context) (json.RawMessage, error) {
	start := time.Now()
	announcement, err := s.inner.PreAnnouncement(ctx)
	logCall(ctx, "PreAnnouncement", start, err)
	return announcement, err
}

func logCall(ctx context.Context, method string, start time.Time, err error) {
	log := logger.FromContext(ctx)
	if err != nil {
		log.Err(err).Str("method", method).Dur("took", time.Since(start)).Msg("network config call failed")
		return
	}
	log.Debug().Str("method", method).Dur("took", time.Since(start)).Msg("network config call done")
}
