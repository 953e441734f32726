package handler

import (
	"github.com/MKhiriev/go-game-conf/internal/handler/http"
	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.NetworkConfigService == nil || services.FeatureService == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
