package service

import (
	"time"

	"github.com/MKhiriev/go-game-conf/internal/adapter"
	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/store"
	"github.com/MKhiriev/go-game-conf/models"
)

type Services struct {
	NetworkConfigService NetworkConfigService
	FeatureService       FeatureService
}

// NewServices wires the service layer. features are the gameplay routes to
// mount next to the built-in ones.
func NewServices(storages *store.Storages, upstream adapter.UpstreamAdapter, logger *logger.Logger, features ...models.FeatureRoute) (*Services, error) {
	networkConfigService := NewNetworkConfigLoggingService().
		Wrap(NewNetworkConfigService(storages.DocumentStore, upstream, logger))

	featureService, err := NewFeatureService(time.Now, logger, features...)
	if err != nil {
		return nil, err
	}

	return &Services{
		NetworkConfigService: networkConfigService,
		FeatureService:       featureService,
	}, nil
}
