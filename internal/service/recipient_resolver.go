package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wa-sender/internal/adapter"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/models"
)

type recipientResolver struct {
	minDigits int
	logger    *logger.Logger
}

// NewRecipientResolver returns a resolver that requires at least minDigits
// digits in a phone number.
func NewRecipientResolver(minDigits int, log *logger.Logger) RecipientResolver {
	return &recipientResolver{
		minDigits: minDigits,
		logger:    log,
	}
}

func (r *recipientResolver) Resolve(raw string) (models.Address, error) {
	digits := strings.Map(func(c rune) rune {
		if c >= '0' && c <= '9' {
			return c
		}
		return -1
	}, raw)

	if len(digits) < r.minDigits {
		return models.Address{}, fmt.Errorf("%w: %q has %d digits, at least %d required",
			ErrInvalidFormat, raw, len(digits), r.minDigits)
	}

	return models.Address{Phone: digits}, nil
}

func (r *recipientResolver) ConfirmReachable(ctx context.Context, session adapter.Session, addr models.Address) bool {
	registered, err := session.IsRegistered(ctx, addr)
	if err != nil {
		r.logger.Err(err).
			Str("func", "recipientResolver.ConfirmReachable").
			Str("recipient", addr.String()).
			Msg("error checking recipient registration")
		return false
	}

	return registered
}
