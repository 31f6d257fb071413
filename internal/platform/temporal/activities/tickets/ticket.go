package tickets

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/domain"
	ticketports "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/ports"
)

// SubmitTicketActivityName submits a support ticket to the back-office.
const SubmitTicketActivityName = "tickets.activities.SubmitTicket"

// Activities groups activities that operate on the tickets bounded context.
type Activities struct {
	service ticketports.Service
}

// NewActivities wires the tickets service into the Temporal activities bundle.
func NewActivities(service ticketports.Service) *Activities {
	return &Activities{service: service}
}

// SubmitTicket pushes one ticket submission to the back-office. The
// back-office create is idempotent enough for retries: resubmitting the same
// message at worst duplicates a ticket, never corrupts one.
func (a *Activities) SubmitTicket(ctx context.Context, ticket domain.NewTicket) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("ticket submit activity not initialized", "userId", ticket.UserID)
		return errors.New("ticket submit activity not initialized")
	}
	logger.Info("SubmitTicket activity started", "userId", ticket.UserID)
	if err := a.service.Create(ctx, ticket); err != nil {
		logger.Error("SubmitTicket activity failed", "userId", ticket.UserID, "error", err)
		return err
	}
	logger.Info("SubmitTicket activity completed", "userId", ticket.UserID)
	return nil
}
