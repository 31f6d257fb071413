package ports

import (
	"context"

	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/domain"
)

// Query selects a ticket listing. Status narrows to one state when set;
// Limit bounds the row count, zero meaning the server default.
type Query struct {
	UserID  string
	Pincode string
	Status  domain.Status
	Limit   int
}

// Gateway is the outbound port to the back-office ticket operations.
type Gateway interface {
	List(ctx context.Context, q Query) ([]domain.Ticket, error)
	Create(ctx context.Context, ticket domain.NewTicket) error
}

// WorkflowOrchestrator exposes the durable ticket submission flow.
type WorkflowOrchestrator interface {
	SubmitTicket(ctx context.Context, ticket domain.NewTicket) error
}

// Service defines the tickets use cases exposed to adapters.
type Service interface {
	List(ctx context.Context, q Query) ([]domain.Ticket, error)
	Create(ctx context.Context, ticket domain.NewTicket) error
}
