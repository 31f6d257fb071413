package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/ports"
)

// ErrInvalidInput indicates missing or malformed use-case input.
var ErrInvalidInput = errors.New("invalid ticket input")

// DefaultLimit bounds ticket listings when the caller does not.
const DefaultLimit = 50

// Service orchestrates the tickets bounded context use cases.
type Service struct {
	gateway ports.Gateway
}

// NewService wires the tickets service with its dependencies.
func NewService(gateway ports.Gateway) *Service {
	return &Service{gateway: gateway}
}

// List fetches support tickets for a user, optionally narrowed by status.
func (s *Service) List(ctx context.Context, q ports.Query) ([]domain.Ticket, error) {
	if strings.TrimSpace(q.UserID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	return s.gateway.List(ctx, q)
}

// Create submits a new support ticket.
func (s *Service) Create(ctx context.Context, ticket domain.NewTicket) error {
	if strings.TrimSpace(ticket.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(ticket.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	return s.gateway.Create(ctx, ticket)
}

var _ ports.Service = (*Service)(nil)
