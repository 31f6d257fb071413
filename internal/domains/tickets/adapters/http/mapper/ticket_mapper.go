package mapper

import "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/domain"

// Ticket is the HTTP representation of one support ticket.
type Ticket struct {
	ID        string `json:"id"`
	TicketID  string `json:"ticketId"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// TicketList wraps the listing.
type TicketList struct {
	Tickets []Ticket `json:"tickets"`
}

// CreateTicketRequest submits a new support ticket. Files carry base64
// attachment payloads.
type CreateTicketRequest struct {
	Pincode string   `json:"pincode,omitempty"`
	Message string   `json:"message" binding:"required"`
	Files   []string `json:"files,omitempty"`
}

// FromTickets maps the listing into its HTTP shape.
func FromTickets(tickets []domain.Ticket) TicketList {
	out := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, Ticket{
			ID:        t.ID,
			TicketID:  t.TicketID,
			Title:     t.Title,
			Message:   t.Message,
			Status:    string(t.Status),
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		})
	}
	return TicketList{Tickets: out}
}
