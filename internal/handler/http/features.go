package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/utils"
	"github.com/MKhiriev/go-game-conf/models"
)

// feature adapts a gameplay feature route to an HTTP handler. The request
// body is already decompressed by withGZip.
func (h *Handler) feature(route models.FeatureRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.writeError(w, r, "*Handler.feature", fmt.Errorf("%w: %w", ErrReadingBody, err))
			return
		}

		result, err := h.services.FeatureService.Call(r.Context(), route, body)
		if err != nil {
			h.writeError(w, r, "*Handler.feature", err)
			return
		}

		if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
			log.Err(err).Str("func", "*Handler.feature").Str("route", route.Pattern()).Msg("error writing response")
		}
	}
}
