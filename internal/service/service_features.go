package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/validators"
	"github.com/MKhiriev/go-game-conf/models"
)

type featureService struct {
	routes    []models.FeatureRoute
	validator validators.Validator

	logger *logger.Logger
}

// NewFeatureService validates and registers routes in addition to the
// built-in general routes. Any invalid or duplicate route is a startup error.
func NewFeatureService(clock func() time.Time, logger *logger.Logger, routes ...models.FeatureRoute) (FeatureService, error) {
	s := &featureService{
		validator: validators.NewFeatureValidator(),
		logger:    logger,
	}

	all := append(generalRoutes(clock), routes...)

	registered := make(map[string]struct{}, len(all))
	byGroup := make(map[models.FeatureGroup][]models.FeatureRoute)
	for _, route := range all {
		if err := s.validator.Validate(context.Background(), route); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrInvalidFeatureRoute, route.Method, route.Pattern(), err)
		}

		key := route.Method + " " + route.Pattern()
		if _, ok := registered[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFeatureRoute, key)
		}
		registered[key] = struct{}{}

		byGroup[route.Group] = append(byGroup[route.Group], route)
	}

	for _, group := range models.FeatureGroups {
		s.routes = append(s.routes, byGroup[group]...)
	}

	logger.Debug().Int("routes", len(s.routes)).Msg("feature routes registered")
	return s, nil
}

func (s *featureService) Routes() []models.FeatureRoute {
	out := make([]models.FeatureRoute, len(s.routes))
	copy(out, s.routes)
	return out
}

func (s *featureService) Call(ctx context.Context, route models.FeatureRoute, body []byte) (any, error) {
	payload := json.RawMessage(bytes.TrimSpace(body))
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}

	if err := s.validator.Validate(ctx, payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFeatureBody, err)
	}

	return route.Handle(ctx, payload)
}

// generalRoutes are the routes served without any gameplay feature.
func generalRoutes(clock func() time.Time) []models.FeatureRoute {
	return []models.FeatureRoute{
		{
			Group:  models.GroupRoot,
			Method: http.MethodGet,
			Path:   "/general/v1/server_time",
			Handle: func(context.Context, json.RawMessage) (any, error) {
				return models.ServerTime{
					Code: http.StatusOK,
					Data: models.ServerTimeData{
						IsHoliday:  false,
						ServerTime: clock().Unix(),
					},
					Msg: "OK",
				}, nil
			},
		},
	}
}
