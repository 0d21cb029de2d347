package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-wa-sender/internal/app"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/utils"
	"github.com/MKhiriev/go-wa-sender/models"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := validateMessageRequest(req); err != nil {
		log.Err(err).Msg("invalid message request")
		writeError(w, err)
		return
	}

	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	result, err := h.services.Dispatcher.Dispatch(ctx, req.Phone, req.Text)
	if err != nil {
		log.Err(err).Str("phone", req.Phone).Msg("message was not dispatched")
		writeError(w, err)
		return
	}

	// a result degraded by our own deadline is reported as the timeout
	if result.Status != models.DispatchSuccess && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Warn().Str("phone", req.Phone).Stringer("status", result.Status).Msg("dispatch ran out of time")
		writeError(w, ctx.Err())
		return
	}

	if _, err = utils.WriteJSON(w, models.NewMessageResponse(result), statusFromResult(result.Status)); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func validateMessageRequest(req models.MessageRequest) error {
	if strings.TrimSpace(req.Phone) == "" {
		return ErrEmptyPhone
	}
	if strings.TrimSpace(req.Text) == "" {
		return ErrEmptyMessageText
	}
	return nil
}
