package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.getProfile").Int("status", status).Msg("profile search failed")
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}
