package http

import (
	"net/http"

	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/utils"
	"github.com/MKhiriev/go-wa-sender/models"
)

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	manager := h.services.Manager

	resp := models.SessionResponse{
		State:   manager.State().String(),
		Account: manager.Account(),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
