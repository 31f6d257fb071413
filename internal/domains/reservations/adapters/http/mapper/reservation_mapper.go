package mapper

import "github.com/enayetchefonline/partner-gateway/internal/domains/reservations/domain"

// Reservation is the HTTP representation of one reservation row.
type Reservation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Guests   int    `json:"guests"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	Platform string `json:"platform,omitempty"`
	Status   string `json:"status"`
}

// ReservationList is the tabbed HTTP listing.
type ReservationList struct {
	Confirmed   []Reservation `json:"confirmed"`
	Unconfirmed []Reservation `json:"unconfirmed"`
	Rejected    []Reservation `json:"rejected"`
	EmptyReason string        `json:"emptyReason,omitempty"`
}

// Settings is the HTTP representation of the reservation toggles.
type Settings struct {
	AcceptReservations bool `json:"acceptReservations"`
	AutoConfirm        bool `json:"autoConfirm"`
}

// ToggleRequest carries one boolean toggle mutation.
type ToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// FromList maps the tabbed domain listing into its HTTP shape.
func FromList(list *domain.List) ReservationList {
	if list == nil {
		return ReservationList{
			Confirmed:   []Reservation{},
			Unconfirmed: []Reservation{},
			Rejected:    []Reservation{},
		}
	}
	return ReservationList{
		Confirmed:   fromRecords(list.Confirmed),
		Unconfirmed: fromRecords(list.Unconfirmed),
		Rejected:    fromRecords(list.Rejected),
		EmptyReason: list.EmptyReason,
	}
}

// FromSettings maps the domain toggles into their HTTP shape.
func FromSettings(settings *domain.Settings) Settings {
	if settings == nil {
		return Settings{}
	}
	return Settings{
		AcceptReservations: settings.AcceptReservations,
		AutoConfirm:        settings.AutoConfirm,
	}
}

func fromRecords(records []domain.Record) []Reservation {
	out := make([]Reservation, 0, len(records))
	for _, r := range records {
		out = append(out, Reservation{
			ID:       r.ID,
			Name:     r.Name,
			Phone:    r.Phone,
			Email:    r.Email,
			Guests:   r.Guests,
			Date:     r.Date,
			Time:     r.Time,
			Platform: r.Platform,
			Status:   r.Status,
		})
	}
	return out
}
