package domain

import "github.com/shopspring/decimal"

// Summary is the lifetime dashboard for one restaurant. Fields the backend
// omits arrive as zero.
type Summary struct {
	TotalAmount      decimal.Decimal
	TotalOrders      int
	CardAmount       decimal.Decimal
	CardOrders       int
	CashAmount       decimal.Decimal
	CashOrders       int
	DeliveryOrders   int
	CollectionOrders int
}

// Shift is one open/close window on a weekday.
type Shift struct {
	ID      string
	ShiftNo int
	Opens   string
	Closes  string
}

// Day is one weekday of a timetable.
type Day struct {
	DayNo  int
	Name   string
	Shifts []Shift
}

// PolicyEntry is one lead-time row (delivery or collection minutes).
type PolicyEntry struct {
	ID       string
	PolicyID string
	Minutes  int
}

// PolicyDay is one weekday of the lead-time schedule.
type PolicyDay struct {
	DayNo   int
	Name    string
	Entries []PolicyEntry
}

// FAQ is one partner help entry.
type FAQ struct {
	ID      string
	Title   string
	Content string
}

// NewShiftInput creates a shift row on a weekday. Reservation selects the
// reservation timetable instead of the online-ordering one.
type NewShiftInput struct {
	RestaurantID string
	Weekday      int
	ShiftNo      int
	OpensUnix    int64
	ClosesUnix   int64
	Reservation  bool
}

// NewPolicyTimeInput creates a lead-time row for a day and shift.
type NewPolicyTimeInput struct {
	RestaurantID string
	DayNo        int
	ShiftNo      int
	PolicyID     string
	Minutes      int
}
