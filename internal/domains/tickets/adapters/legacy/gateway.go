// Package legacy adapts the back-office ticket operations to the tickets
// outbound port.
package legacy

import (
	"context"
	"fmt"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/ports"
	sharederrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// Gateway talks to the back-office for ticket listings and submissions.
type Gateway struct {
	client *legacyclient.Client
}

// NewGateway wires the gateway with the shared back-office client.
func NewGateway(client *legacyclient.Client) *Gateway {
	return &Gateway{client: client}
}

// List fetches support tickets, using the filter operation when a status is
// requested and the plain listing otherwise.
func (g *Gateway) List(ctx context.Context, q ports.Query) ([]domain.Ticket, error) {
	var (
		payload *legacyclient.TicketListPayload
		err     error
	)
	if q.Status != domain.StatusUnknown {
		payload, err = g.client.FilterTickets(ctx, q.UserID, q.Status.Code(), q.Limit)
	} else {
		payload, err = g.client.TicketList(ctx, q.UserID, q.Pincode, q.Limit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	if payload == nil || !payload.Status.OK() {
		return []domain.Ticket{}, nil
	}
	tickets := make([]domain.Ticket, 0, len(payload.Complains))
	for _, row := range payload.Complains {
		tickets = append(tickets, domain.Ticket{
			ID:        row.ID.Str(),
			TicketID:  row.TicketID.Str(),
			Title:     row.Title.Str(),
			Message:   row.Message.Str(),
			Status:    domain.ParseStatus(row.ComplainStatus.Str()),
			CreatedAt: row.CreatedAt.Str(),
			UpdatedAt: row.UpdatedAt.Str(),
		})
	}
	return tickets, nil
}

// Create submits a new support ticket.
func (g *Gateway) Create(ctx context.Context, ticket domain.NewTicket) error {
	ack, err := g.client.CreateTicket(ctx, legacyclient.CreateTicketRequest{
		UserID:  ticket.UserID,
		Pincode: ticket.Pincode,
		Message: ticket.Message,
		Files:   ticket.Files,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	if ack != nil && !ack.Status.OK() {
		msg := ack.Text()
		if msg == "" {
			msg = "ticket rejected"
		}
		return fmt.Errorf("%w: %s", sharederrors.ErrBadRequest, msg)
	}
	return nil
}

var _ ports.Gateway = (*Gateway)(nil)
