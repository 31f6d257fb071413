package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/domain"
)

// Summary is the HTTP representation of the lifetime dashboard.
type Summary struct {
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TotalOrders      int             `json:"totalOrders"`
	CardAmount       decimal.Decimal `json:"cardAmount"`
	CardOrders       int             `json:"cardOrders"`
	CashAmount       decimal.Decimal `json:"cashAmount"`
	CashOrders       int             `json:"cashOrders"`
	DeliveryOrders   int             `json:"deliveryOrders"`
	CollectionOrders int             `json:"collectionOrders"`
}

// Shift is one open/close window.
type Shift struct {
	ID      string `json:"id"`
	ShiftNo int    `json:"shiftNo"`
	Opens   string `json:"opens"`
	Closes  string `json:"closes"`
}

// Day is one weekday of a timetable.
type Day struct {
	DayNo  int     `json:"dayNo"`
	Name   string  `json:"name"`
	Shifts []Shift `json:"shifts"`
}

// PolicyEntry is one lead-time row.
type PolicyEntry struct {
	ID       string `json:"id"`
	PolicyID string `json:"policyId"`
	Minutes  int    `json:"minutes"`
}

// PolicyDay is one weekday of the lead-time schedule.
type PolicyDay struct {
	DayNo   int           `json:"dayNo"`
	Name    string        `json:"name"`
	Entries []PolicyEntry `json:"entries"`
}

// FAQ is one partner help entry.
type FAQ struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TodayStatus reports today's online ordering state.
type TodayStatus struct {
	Closed bool `json:"closed"`
}

// SetTodayStatusRequest switches today's online ordering state.
type SetTodayStatusRequest struct {
	Closed *bool `json:"closed" binding:"required"`
}

// EditShiftRequest updates one shift's open/close times as unix seconds.
type EditShiftRequest struct {
	OpensUnix  int64 `json:"opensUnix" binding:"required"`
	ClosesUnix int64 `json:"closesUnix" binding:"required"`
}

// AddShiftRequest creates a shift row on a weekday.
type AddShiftRequest struct {
	Weekday     int   `json:"weekday" binding:"required"`
	ShiftNo     int   `json:"shiftNo"`
	OpensUnix   int64 `json:"opensUnix" binding:"required"`
	ClosesUnix  int64 `json:"closesUnix" binding:"required"`
	Reservation bool  `json:"reservation"`
}

// EditPolicyTimeRequest updates minutes on one lead-time row.
type EditPolicyTimeRequest struct {
	Minutes *int `json:"minutes" binding:"required"`
}

// AddPolicyTimeRequest creates a lead-time row.
type AddPolicyTimeRequest struct {
	DayNo    int    `json:"dayNo" binding:"required"`
	ShiftNo  int    `json:"shiftNo"`
	PolicyID string `json:"policyId" binding:"required"`
	Minutes  *int   `json:"minutes" binding:"required"`
}

// FromSummary maps the dashboard into its HTTP shape.
func FromSummary(summary *domain.Summary) Summary {
	if summary == nil {
		return Summary{}
	}
	return Summary{
		TotalAmount:      summary.TotalAmount,
		TotalOrders:      summary.TotalOrders,
		CardAmount:       summary.CardAmount,
		CardOrders:       summary.CardOrders,
		CashAmount:       summary.CashAmount,
		CashOrders:       summary.CashOrders,
		DeliveryOrders:   summary.DeliveryOrders,
		CollectionOrders: summary.CollectionOrders,
	}
}

// FromTimetable maps a timetable into its HTTP shape.
func FromTimetable(days []domain.Day) []Day {
	out := make([]Day, 0, len(days))
	for _, d := range days {
		shifts := make([]Shift, 0, len(d.Shifts))
		for _, s := range d.Shifts {
			shifts = append(shifts, Shift{ID: s.ID, ShiftNo: s.ShiftNo, Opens: s.Opens, Closes: s.Closes})
		}
		out = append(out, Day{DayNo: d.DayNo, Name: d.Name, Shifts: shifts})
	}
	return out
}

// FromPolicySchedule maps the lead-time schedule into its HTTP shape.
func FromPolicySchedule(days []domain.PolicyDay) []PolicyDay {
	out := make([]PolicyDay, 0, len(days))
	for _, d := range days {
		entries := make([]PolicyEntry, 0, len(d.Entries))
		for _, e := range d.Entries {
			entries = append(entries, PolicyEntry{ID: e.ID, PolicyID: e.PolicyID, Minutes: e.Minutes})
		}
		out = append(out, PolicyDay{DayNo: d.DayNo, Name: d.Name, Entries: entries})
	}
	return out
}

// FromFAQs maps the help entries into their HTTP shape.
func FromFAQs(faqs []domain.FAQ) []FAQ {
	out := make([]FAQ, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, FAQ{ID: f.ID, Title: f.Title, Content: f.Content})
	}
	return out
}
