// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-game-conf/internal/adapter"
	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/store"
	"github.com/MKhiriev/go-game-conf/models"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Upstream document locations, relative to the configured upstream base URL.
// The version source is the same for every mode.
const (
	upstreamVersionPath         = "/config/prod/official/Android/version"
	upstreamAnnouncementPath    = "/config/prod/announce_meta/Android/announcement.meta.json"
	upstreamPreAnnouncementPath = "/config/prod/announce_meta/Android/preannouncement.meta.json"
)

// refreshedVersionKeys is the only field the version refresh writes.
var refreshedVersionKeys = []string{"version", "android"}

const (
	serverPlaceholder = "{server}"
	manifestSign      = "sign"
)

type networkConfigService struct {
	documents store.DocumentStore
	upstream  adapter.UpstreamAdapter

	logger *logger.Logger
}

func NewNetworkConfigService(documents store.DocumentStore, upstream adapter.UpstreamAdapter, logger *logger.Logger) NetworkConfigService {
	return &networkConfigService{
		documents: documents,
		upstream:  upstream,
		logger:    logger,
	}
}

// Version returns the version stored for the current mode. With
// assets.autoUpdate the stored version.android is refreshed first; otherwise
// the document is only read. A document without server.mode is served the cn
// value.
func (s *networkConfigService) Version(ctx context.Context) (json.RawMessage, error) {
	doc, err := s.documents.Read(ctx)
	if err != nil {
		return nil, err
	}

	if doc.AutoUpdate() {
		doc, err = s.refreshVersion(ctx, doc)
		if err != nil {
			return nil, err
		}
	}

	version, err := doc.Get(documentMode(doc).VersionKeys()...)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(version.Raw), nil
}

// NetworkConfig refreshes the stored version, then builds the manifest for
// the current mode from the re-read document.
func (s *networkConfigService) NetworkConfig(ctx context.Context) (models.ManifestEnvelope, error) {
	doc, err := s.documents.Read(ctx)
	if err != nil {
		return models.ManifestEnvelope{}, err
	}

	doc, err = s.refreshVersion(ctx, doc)
	if err != nil {
		return models.ManifestEnvelope{}, err
	}

	settings, err := doc.ServerSettings()
	if err != nil {
		return models.ManifestEnvelope{}, err
	}

	content, err := buildManifestContent(doc, settings)
	if err != nil {
		return models.ManifestEnvelope{}, err
	}

	return models.ManifestEnvelope{
		Sign:    manifestSign,
		Content: string(content),
	}, nil
}

func (s *networkConfigService) RemoteConfig(ctx context.Context) (json.RawMessage, error) {
	doc, err := s.documents.Read(ctx)
	if err != nil {
		return nil, err
	}

	remote := doc.Lookup("remote")
	if !remote.Exists() {
		return json.RawMessage("null"), nil
	}

	return json.RawMessage(remote.Raw), nil
}

func (s *networkConfigService) RefreshConfig(_ context.Context) models.RefreshConfig {
	return models.RefreshConfig{ResVersion: nil}
}

func (s *networkConfigService) Announcement(ctx context.Context) (json.RawMessage, error) {
	return s.upstream.FetchJSON(ctx, upstreamAnnouncementPath)
}

func (s *networkConfigService) PreAnnouncement(ctx context.Context) (json.RawMessage, error) {
	return s.upstream.FetchJSON(ctx, upstreamPreAnnouncementPath)
}

// refreshVersion persists the effective version into version.android and
// returns the document as re-read after the write. The refresh source is the
// cn upstream for every mode, so versionGlobal is never touched.
//
// The remote version is fetched before entering the store's critical section
// so that a slow upstream does not block unrelated reads.
func (s *networkConfigService) refreshVersion(ctx context.Context, current models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	var (
		remote json.RawMessage
		err    error
	)
	if current.AutoUpdate() {
		remote, err = s.upstream.FetchJSON(ctx, upstreamVersionPath)
		if err != nil {
			return models.Document{}, fmt.Errorf("error fetching remote version: %w", err)
		}
	}

	return s.documents.Update(ctx, func(doc models.Document) (models.Document, error) {
		if remote == nil || !doc.AutoUpdate() {
			return doc, nil
		}

		stored := doc.Lookup(refreshedVersionKeys...)
		if stored.Exists() && sameJSON([]byte(stored.Raw), remote) {
			return doc, nil
		}

		log.Info().
			Str("field", strings.Join(refreshedVersionKeys, ".")).
			RawJSON("from", rawOrNull(stored)).
			RawJSON("to", remote).
			Msg("updating stored version")

		return doc.SetRaw(remote, refreshedVersionKeys...)
	})
}

// buildManifestContent returns networkConfig[mode].content, compacted, with
// every "{server}" inside the string values of
// configs[funcVer].network replaced by the server URL.
func buildManifestContent(doc models.Document, settings models.ServerSettings) ([]byte, error) {
	mode := string(settings.Mode)

	content, err := doc.Get("networkConfig", mode, "content")
	if err != nil {
		return nil, err
	}

	funcVer, err := doc.String("networkConfig", mode, "content", "funcVer")
	if err != nil {
		return nil, err
	}

	network, err := doc.Get("networkConfig", mode, "content", "configs", funcVer, "network")
	if err != nil {
		return nil, err
	}
	if !network.IsObject() {
		return nil, fmt.Errorf("%w: networkConfig.%s.content.configs.%s.network is not an object",
			models.ErrUnexpectedType, mode, funcVer)
	}

	patched := []byte(content.Raw)
	server := settings.URL()

	var patchErr error
	network.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String || !strings.Contains(value.Str, serverPlaceholder) {
			return true
		}

		path := models.Path("configs", funcVer, "network", key.Str)
		patched, patchErr = sjson.SetBytes(patched, path, strings.ReplaceAll(value.Str, serverPlaceholder, server))
		return patchErr == nil
	})
	if patchErr != nil {
		return nil, fmt.Errorf("error substituting server address: %w", patchErr)
	}

	return pretty.Ugly(patched), nil
}

func documentMode(doc models.Document) models.Mode {
	mode, ok := doc.Mode()
	if !ok {
		return models.ModeCN
	}
	return mode
}

// sameJSON compares two JSON values ignoring whitespace and key order.
func sameJSON(a, b []byte) bool {
	return bytes.Equal(canonicalJSON(a), canonicalJSON(b))
}

func canonicalJSON(raw []byte) []byte {
	return pretty.Ugly(pretty.PrettyOptions(raw, &pretty.Options{SortKeys: true}))
}

func rawOrNull(res gjson.Result) []byte {
	if !res.Exists() {
		return []byte("null")
	}
	return []byte(res.Raw)
}
