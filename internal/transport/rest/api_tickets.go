package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	tickethttpmapper "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/adapters/http/mapper"
	ticketsdomain "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/domain"
	ticketsports "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/ports"
	apierrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// TicketAPI wires HTTP transport with the tickets bounded context service and
// workflows.
type TicketAPI struct {
	service   ticketsports.Service
	workflows ticketsports.WorkflowOrchestrator
}

// NewTicketAPI creates a TicketAPI backed by the provided service.
func NewTicketAPI(service ticketsports.Service, workflows ticketsports.WorkflowOrchestrator) TicketAPI {
	return TicketAPI{service: service, workflows: workflows}
}

// Get /v1/tickets
// Support tickets for the session user, optionally narrowed by ?status=
func (api *TicketAPI) ListTickets(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "no session")
		return
	}
	query := ticketsports.Query{
		UserID:  session.UserID,
		Pincode: c.Query("pincode"),
	}
	if raw := c.Query("status"); raw != "" {
		status := ticketsdomain.ParseStatus(raw)
		if status == ticketsdomain.StatusUnknown {
			respondError(c, http.StatusBadRequest, fmt.Errorf("unknown ticket status %q", raw))
			return
		}
		query.Status = status
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			respondError(c, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		query.Limit = limit
	}
	tickets, err := api.service.List(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickethttpmapper.FromTickets(tickets))
}

// Post /v1/tickets
// Submit a support ticket
func (api *TicketAPI) CreateTicket(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "no session")
		return
	}
	var payload tickethttpmapper.CreateTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	ticket := ticketsdomain.NewTicket{
		UserID:  session.UserID,
		Pincode: payload.Pincode,
		Message: payload.Message,
		Files:   payload.Files,
	}
	if err := api.submitTicket(c.Request.Context(), ticket); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (api *TicketAPI) submitTicket(ctx context.Context, ticket ticketsdomain.NewTicket) error {
	if api.workflows != nil {
		return api.workflows.SubmitTicket(ctx, ticket)
	}
	return api.service.Create(ctx, ticket)
}
