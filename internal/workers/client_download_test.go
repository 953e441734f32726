package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-game-conf/internal/adapter"
	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/mock"
	"go.uber.org/mock/gomock"
)

const latestURL = "https://dl.example.com/downloads/android_lastest"

func TestClientDownloadWorker_Run(t *testing.T) {
	tests := []struct {
		name     string
		location string
		err      error
		wantSave bool
		saveErr  error
	}{
		{name: "apk location is saved", location: "https://dl.example.com/client-2.1.41.apk", wantSave: true},
		{name: "save failure is swallowed", location: "https://dl.example.com/client.apk", wantSave: true, saveErr: errors.New("disk full")},
		{name: "non package location is ignored", location: "https://dl.example.com/maintenance.html"},
		{name: "missing location is ignored", location: ""},
		{name: "upstream failure is swallowed", err: adapter.ErrRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			upstream := mock.NewMockUpstreamAdapter(ctrl)
			storage := mock.NewMockClientDownloadStorage(ctrl)
			ctx := context.Background()

			upstream.EXPECT().ResolveRedirect(ctx, latestURL).Return(tt.location, tt.err)
			if tt.wantSave {
				storage.EXPECT().SaveClientDownloadURL(ctx, tt.location).Return(tt.saveErr)
			}

			NewClientDownloadWorker(latestURL, upstream, storage, logger.Nop()).Run(ctx)
		})
	}
}
