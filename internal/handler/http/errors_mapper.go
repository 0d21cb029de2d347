package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wa-sender/internal/app"
	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	ErrEmptyMessageText:      {http.StatusBadRequest, app.MsgNoTextProvided},
	ErrEmptyPhone:            {http.StatusBadRequest, app.MsgNoPhoneProvided},
	service.ErrInvalidFormat: {http.StatusBadRequest, app.MsgInvalidPhoneFormat},
	service.ErrNotConnected:  {http.StatusServiceUnavailable, app.MsgNotConnected},

	context.DeadlineExceeded: {http.StatusGatewayTimeout, app.MsgRequestTimeout},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError replies with the status and message mapped from err.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}

// statusFromResult maps a dispatch outcome to the HTTP status of the reply.
func statusFromResult(status models.DispatchStatus) int {
	switch status {
	case models.DispatchSuccess:
		return http.StatusOK
	case models.DispatchNotRegistered:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
