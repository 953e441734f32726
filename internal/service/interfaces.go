package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-game-conf/models"
)

// NetworkConfigService serves the /config/prod family of documents.
type NetworkConfigService interface {
	// Version returns the effective client version for the current mode.
	Version(ctx context.Context) (json.RawMessage, error)

	// NetworkConfig returns the network manifest for the current mode with
	// every "{server}" placeholder rewritten to the configured address.
	NetworkConfig(ctx context.Context) (models.ManifestEnvelope, error)

	// RemoteConfig returns the stored "remote" value, JSON null when absent.
	RemoteConfig(ctx context.Context) (json.RawMessage, error)

	RefreshConfig(ctx context.Context) models.RefreshConfig

	// Announcement and PreAnnouncement proxy the official announcement
	// metadata untouched.
	Announcement(ctx context.Context) (json.RawMessage, error)
	PreAnnouncement(ctx context.Context) (json.RawMessage, error)
}

// FeatureService owns the gameplay feature route table.
type FeatureService interface {
	// Routes returns the registered routes ordered by group mount order, then
	// by registration order.
	Routes() []models.FeatureRoute

	// Call validates body and runs route's handler. An empty body is passed
	// on as JSON null; a body that is not valid JSON yields
	// [ErrInvalidFeatureBody].
	Call(ctx context.Context, route models.FeatureRoute, body []byte) (any, error)
}

// NetworkConfigServiceWrapper defines middleware composition for
// NetworkConfigService, e.g. logging.
type NetworkConfigServiceWrapper interface {
	Wrap(NetworkConfigService) NetworkConfigService
}
