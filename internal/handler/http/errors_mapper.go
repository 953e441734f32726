package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-game-conf/internal/adapter"
	"github.com/MKhiriev/go-game-conf/internal/app"
	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/service"
	"github.com/MKhiriev/go-game-conf/internal/store"
	"github.com/MKhiriev/go-game-conf/internal/utils"
	"github.com/MKhiriev/go-game-conf/models"
)

var errorStatusMap = map[error]int{
	ErrReadingBody:                http.StatusBadRequest,
	service.ErrInvalidFeatureBody: http.StatusBadRequest,

	models.ErrMissingKey:     http.StatusInternalServerError,
	models.ErrUnexpectedType: http.StatusInternalServerError,
	models.ErrInvalidJSON:    http.StatusInternalServerError,

	store.ErrDocumentNotFound:  http.StatusInternalServerError,
	store.ErrMalformedDocument: http.StatusInternalServerError,
	store.ErrDocumentNotSaved:  http.StatusInternalServerError,

	adapter.ErrRequestFailed:       http.StatusBadGateway,
	adapter.ErrBadRequest:          http.StatusBadGateway,
	adapter.ErrNotFound:            http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrUnavailable:         http.StatusBadGateway,
	adapter.ErrUnexpectedStatus:    http.StatusBadGateway,
	adapter.ErrInvalidJSON:         http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusBadGateway:          app.MsgUpstreamUnavailable,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func isDocumentError(err error) bool {
	return errors.Is(err, models.ErrMissingKey) ||
		errors.Is(err, models.ErrUnexpectedType) ||
		errors.Is(err, models.ErrInvalidJSON) ||
		errors.Is(err, store.ErrDocumentNotFound) ||
		errors.Is(err, store.ErrMalformedDocument) ||
		errors.Is(err, store.ErrDocumentNotSaved)
}

func messageFromError(err error, status int) string {
	if isDocumentError(err) {
		return app.MsgConfigDocumentUnavailable
	}
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return app.MsgInternalServerError
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	logger.FromRequest(r).Err(err).
		Str("func", funcName).
		Int("status", status).
		Msg("request failed")

	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Error:  messageFromError(err, status),
		Detail: err.Error(),
	}, status)
}
