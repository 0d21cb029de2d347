package service

import (
	"context"

	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/models"
)

type dispatcher struct {
	handle   SessionHandle
	resolver RecipientResolver

	logger *logger.Logger
}

// NewDispatcher returns a [Dispatcher] that sends through the session behind
// handle.
func NewDispatcher(handle SessionHandle, resolver RecipientResolver, log *logger.Logger) Dispatcher {
	return &dispatcher{
		handle:   handle,
		resolver: resolver,
		logger:   log,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, rawRecipient, text string) (models.DispatchResult, error) {
	session, ok := d.handle.Session()
	if !ok {
		return models.DispatchResult{}, ErrNotConnected
	}

	addr, err := d.resolver.Resolve(rawRecipient)
	if err != nil {
		return models.DispatchResult{}, err
	}

	if !d.resolver.ConfirmReachable(ctx, session, addr) {
		d.logger.Info().Str("recipient", addr.String()).Msg("recipient is not registered")
		return models.DispatchResult{Status: models.DispatchNotRegistered, Address: addr}, nil
	}

	messageID, err := session.Send(ctx, addr, text)
	if err != nil {
		result := mapSendError(addr, err)
		d.logger.Err(err).
			Str("func", "dispatcher.Dispatch").
			Str("recipient", addr.String()).
			Str("status", result.Status.String()).
			Msg("error sending message")
		return result, nil
	}

	d.logger.Info().
		Str("recipient", addr.String()).
		Str("message_id", messageID).
		Msg("message sent")

	return models.DispatchResult{
		Status:    models.DispatchSuccess,
		Address:   addr,
		MessageID: messageID,
	}, nil
}
