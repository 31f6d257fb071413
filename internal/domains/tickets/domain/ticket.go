package domain

import "strings"

// Status is the back-office ticket state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusUnknown  Status = ""
)

// StatusCode returns the numeric code the back-office expects for filters.
func (s Status) Code() int {
	switch s {
	case StatusPending:
		return 1
	case StatusResolved:
		return 2
	default:
		return 0
	}
}

// ParseStatus maps the backend's numeric codes and words onto a status.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "pending", "open":
		return StatusPending
	case "2", "resolved", "closed":
		return StatusResolved
	default:
		return StatusUnknown
	}
}

// Ticket is one support ticket.
type Ticket struct {
	ID        string
	TicketID  string
	Title     string
	Message   string
	Status    Status
	CreatedAt string
	UpdatedAt string
}

// NewTicket is a ticket submission. Files carry base64-encoded attachments
// without a data: prefix.
type NewTicket struct {
	UserID  string
	Pincode string
	Message string
	Files   []string
}
