package tickets

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/domain"
	ticketactivities "github.com/enayetchefonline/partner-gateway/internal/platform/temporal/activities/tickets"
)

const (
	// TicketSubmissionTaskQueue hosts ticket submission workflows.
	TicketSubmissionTaskQueue = "TICKET_SUBMISSION_TASK_QUEUE"
	// TicketSubmissionWorkflowName identifies the submission workflow.
	TicketSubmissionWorkflowName = "tickets.workflows.TicketSubmission"
)

// TicketSubmissionWorkflowInput carries the submission and its originating
// trace id.
type TicketSubmissionWorkflowInput struct {
	Ticket  domain.NewTicket
	TraceID string
}

// TicketSubmissionWorkflow durably retries a ticket submission until the
// back-office accepts it.
func TicketSubmissionWorkflow(ctx workflow.Context, input TicketSubmissionWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("ticket submission started", "userId", input.Ticket.UserID, "traceId", input.TraceID)

	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    5,
		},
	}
	err := workflow.ExecuteActivity(
		workflow.WithActivityOptions(ctx, options),
		ticketactivities.SubmitTicketActivityName,
		input.Ticket,
	).Get(ctx, nil)
	if err != nil {
		logger.Error("ticket submission failed", "userId", input.Ticket.UserID, "error", err)
		return err
	}
	logger.Info("ticket submission completed", "userId", input.Ticket.UserID)
	return nil
}
