package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/service"
	"github.com/MKhiriev/go-game-conf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNetworkConfigService implements service.NetworkConfigService with
// canned results.
type fakeNetworkConfigService struct {
	version         json.RawMessage
	envelope        models.ManifestEnvelope
	remote          json.RawMessage
	announcement    json.RawMessage
	preAnnouncement json.RawMessage
	err             error

	calls int
}

func (f *fakeNetworkConfigService) Version(context.Context) (json.RawMessage, error) {
	f.calls++
	return f.version, f.err
}

func (f *fakeNetworkConfigService) NetworkConfig(context.Context) (models.ManifestEnvelope, error) {
	f.calls++
	return f.envelope, f.err
}

func (f *fakeNetworkConfigService) RemoteConfig(context.Context) (json.RawMessage, error) {
	f.calls++
	return f.remote, f.err
}

func (f *fakeNetworkConfigService) RefreshConfig(context.Context) models.RefreshConfig {
	f.calls++
	return models.RefreshConfig{}
}

func (f *fakeNetworkConfigService) Announcement(context.Context) (json.RawMessage, error) {
	f.calls++
	return f.announcement, f.err
}

func (f *fakeNetworkConfigService) PreAnnouncement(context.Context) (json.RawMessage, error) {
	f.calls++
	return f.preAnnouncement, f.err
}

func newTestRouter(t *testing.T, networkConfig service.NetworkConfigService, features ...models.FeatureRoute) http.Handler {
	t.Helper()

	clock := func() time.Time { return time.Unix(1700000000, 0) }
	featureService, err := service.NewFeatureService(clock, logger.Nop(), features...)
	require.NoError(t, err)

	h := NewHandler(&service.Services{
		NetworkConfigService: networkConfig,
		FeatureService:       featureService,
	}, logger.Nop())

	return h.Init()
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.traceIDs)
	assert.NotSame(t, h, NewHandler(svc, log))
}
