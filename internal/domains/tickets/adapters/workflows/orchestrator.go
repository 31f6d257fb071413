package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/client"

	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/ports"
	ticketworkflows "github.com/enayetchefonline/partner-gateway/internal/platform/temporal/workflows/tickets"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalTicketWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineTicketWorkflows)(nil)
)

// TemporalTicketWorkflows starts ticket submissions on a Temporal cluster.
type TemporalTicketWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalTicketWorkflows wires a Temporal client into the orchestrator.
func NewTemporalTicketWorkflows(c client.Client) *TemporalTicketWorkflows {
	return &TemporalTicketWorkflows{client: c, taskQueue: ticketworkflows.TicketSubmissionTaskQueue}
}

// SubmitTicket starts the durable submission workflow and waits for it.
func (o *TemporalTicketWorkflows) SubmitTicket(ctx context.Context, ticket domain.NewTicket) error {
	if o == nil || o.client == nil {
		return errors.New("temporal ticket workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("ticket-submission-%s-%s", ticket.UserID, traceComponent),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		ticketworkflows.TicketSubmissionWorkflow,
		ticketworkflows.TicketSubmissionWorkflowInput{Ticket: ticket, TraceID: traceComponent},
	)
	if err != nil {
		return err
	}
	return run.Get(ctx, nil)
}

// InlineTicketWorkflows executes the service directly without Temporal,
// useful for tests or dev fallbacks.
type InlineTicketWorkflows struct {
	service ports.Service
}

// NewInlineTicketWorkflows wraps the tickets service for synchronous execution.
func NewInlineTicketWorkflows(service ports.Service) *InlineTicketWorkflows {
	return &InlineTicketWorkflows{service: service}
}

// SubmitTicket delegates to the application service without durable
// orchestration.
func (o *InlineTicketWorkflows) SubmitTicket(ctx context.Context, ticket domain.NewTicket) error {
	if o == nil || o.service == nil {
		return errors.New("inline ticket workflows not configured")
	}
	return o.service.Create(ctx, ticket)
}

func workflowTraceComponent(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span != nil {
		spanCtx := span.SpanContext()
		if spanCtx.IsValid() && spanCtx.TraceID().IsValid() {
			return spanCtx.TraceID().String()
		}
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}
