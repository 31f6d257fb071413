package legacy

import (
	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/domain"
)

// NormalizeSummary maps the funId=142 dashboard payload. A failure flag or
// missing details yields an all-zero summary.
func NormalizeSummary(payload *legacyclient.SummaryPayload) domain.Summary {
	if payload == nil || !payload.Status.OK() || payload.Details == nil {
		return domain.Summary{}
	}
	d := payload.Details
	return domain.Summary{
		TotalAmount:      d.TotalAmount.Decimal,
		TotalOrders:      d.TotalOrder.Int(),
		CardAmount:       d.Card.Decimal,
		CardOrders:       d.TotalCardOrder.Int(),
		CashAmount:       d.Cash.Decimal,
		CashOrders:       d.TotalCashOrder.Int(),
		DeliveryOrders:   d.TotalDelivery.Int(),
		CollectionOrders: d.TotalCollection.Int(),
	}
}

// NormalizeTimetable maps a weekday/shift payload into the timetable view.
func NormalizeTimetable(payload *legacyclient.OpeningHoursPayload) []domain.Day {
	days := []domain.Day{}
	if payload == nil || !payload.Status.OK() {
		return days
	}
	for _, row := range payload.OpeningShift {
		day := domain.Day{
			DayNo:  row.DayNo.Int(),
			Name:   row.DayName.Str(),
			Shifts: []domain.Shift{},
		}
		for _, shift := range row.Shifts() {
			day.Shifts = append(day.Shifts, domain.Shift{
				ID:      shift.ID.Str(),
				ShiftNo: shift.ShiftNo.Int(),
				Opens:   shift.OpeningTime.Str(),
				Closes:  shift.ClosingTime.Str(),
			})
		}
		days = append(days, day)
	}
	return days
}

// NormalizePolicySchedule maps the funId=138 payload into the lead-time
// schedule. The backend reuses the timetable envelope; rows carry policy id
// and minutes instead of clock times.
func NormalizePolicySchedule(payload *legacyclient.OpeningHoursPayload) []domain.PolicyDay {
	days := []domain.PolicyDay{}
	if payload == nil || !payload.Status.OK() {
		return days
	}
	for _, row := range payload.OpeningShift {
		day := domain.PolicyDay{
			DayNo:   row.DayNo.Int(),
			Name:    row.DayName.Str(),
			Entries: []domain.PolicyEntry{},
		}
		for _, shift := range row.Shifts() {
			day.Entries = append(day.Entries, domain.PolicyEntry{
				ID:       shift.ID.Str(),
				PolicyID: shift.PolicyID.Str(),
				Minutes:  shift.Minutes.Int(),
			})
		}
		days = append(days, day)
	}
	return days
}
