package http

import (
	"net/http"

	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/utils"
	"github.com/MKhiriev/go-game-conf/models"
)

// fallback answers every unmatched request with an empty player data delta
// and HTTP 200, whatever the method.
func (h *Handler) fallback(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route matched, answering with empty delta")

	if _, err := utils.WriteJSON(w, models.NewEmptyDelta(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.fallback").Msg("error writing response")
	}
}
