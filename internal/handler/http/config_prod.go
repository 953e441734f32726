// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/utils"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	version, err := h.services.NetworkConfigService.Version(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.version", err)
		return
	}

	writePassthrough(w, r, version)
}

func (h *Handler) networkConfig(w http.ResponseWriter, r *http.Request) {
	envelope, err := h.services.NetworkConfigService.NetworkConfig(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.networkConfig", err)
		return
	}

	if _, err = utils.WriteJSON(w, envelope, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.networkConfig").Msg("error writing response")
	}
}

func (h *Handler) remoteConfig(w http.ResponseWriter, r *http.Request) {
	remote, err := h.services.NetworkConfigService.RemoteConfig(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.remoteConfig", err)
		return
	}

	writePassthrough(w, r, remote)
}

func (h *Handler) refreshConfig(w http.ResponseWriter, r *http.Request) {
	refresh := h.services.NetworkConfigService.RefreshConfig(r.Context())

	if _, err := utils.WriteJSON(w, refresh, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.refreshConfig").Msg("error writing response")
	}
}

func (h *Handler) announcement(w http.ResponseWriter, r *http.Request) {
	announcement, err := h.services.NetworkConfigService.Announcement(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.announcement", err)
		return
	}

	writePassthrough(w, r, announcement)
}

func (h *Handler) preAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcement, err := h.services.NetworkConfigService.PreAnnouncement(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.preAnnouncement", err)
		return
	}

	writePassthrough(w, r, announcement)
}

func writePassthrough(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	if _, err := utils.WriteRawJSON(w, raw, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing passthrough response")
	}
}
