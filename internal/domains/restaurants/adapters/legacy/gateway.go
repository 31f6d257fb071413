// Package legacy adapts the back-office restaurant operations (dashboard,
// timetables, lead times, FAQs) to the restaurants outbound port.
package legacy

import (
	"context"
	"fmt"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/ports"
	sharederrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// Gateway talks to the back-office for restaurant reads and timetable edits.
type Gateway struct {
	client *legacyclient.Client
}

// NewGateway wires the gateway with the shared back-office client.
func NewGateway(client *legacyclient.Client) *Gateway {
	return &Gateway{client: client}
}

// Summary reads the lifetime dashboard aggregates. Missing fields stay zero.
func (g *Gateway) Summary(ctx context.Context, restaurantID string) (*domain.Summary, error) {
	payload, err := g.client.RestaurantSummary(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	summary := NormalizeSummary(payload)
	return &summary, nil
}

// TodayClosed reads today's online ordering status.
func (g *Gateway) TodayClosed(ctx context.Context, restaurantID string) (bool, error) {
	closed, err := g.client.ShiftStatus(ctx, restaurantID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	return closed, nil
}

// SetTodayClosed switches today's online ordering on or off.
func (g *Gateway) SetTodayClosed(ctx context.Context, restaurantID, userID string, closed bool) error {
	ack, err := g.client.SetShiftStatus(ctx, restaurantID, userID, closed)
	return ackError(ack, err)
}

// OpeningHours reads the online-ordering timetable.
func (g *Gateway) OpeningHours(ctx context.Context, restaurantID string) ([]domain.Day, error) {
	payload, err := g.client.OpeningHours(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	return NormalizeTimetable(payload), nil
}

// ReservationHours reads the reservation timetable.
func (g *Gateway) ReservationHours(ctx context.Context, restaurantID string) ([]domain.Day, error) {
	payload, err := g.client.ReservationHours(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	return NormalizeTimetable(payload), nil
}

// EditShift updates one shift's open/close times.
func (g *Gateway) EditShift(ctx context.Context, shiftID string, opensUnix, closesUnix int64) error {
	ack, err := g.client.EditShift(ctx, shiftID, opensUnix, closesUnix)
	return ackError(ack, err)
}

// CloseShift disables one shift row.
func (g *Gateway) CloseShift(ctx context.Context, shiftID string) error {
	ack, err := g.client.CloseShift(ctx, shiftID)
	return ackError(ack, err)
}

// AddShift creates a shift row on a weekday.
func (g *Gateway) AddShift(ctx context.Context, input domain.NewShiftInput) error {
	ack, err := g.client.AddShift(ctx, legacyclient.AddShiftRequest{
		RestID:      input.RestaurantID,
		Weekday:     input.Weekday,
		OpeningUnix: input.OpensUnix,
		ClosingUnix: input.ClosesUnix,
		ShiftNo:     input.ShiftNo,
		Reservation: input.Reservation,
	})
	return ackError(ack, err)
}

// PolicyTimes reads the delivery/collection lead-time schedule.
func (g *Gateway) PolicyTimes(ctx context.Context, restaurantID string) ([]domain.PolicyDay, error) {
	payload, err := g.client.PolicyTimes(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	return NormalizePolicySchedule(payload), nil
}

// EditPolicyTime updates minutes on one lead-time row.
func (g *Gateway) EditPolicyTime(ctx context.Context, id string, minutes int) error {
	ack, err := g.client.EditPolicyTime(ctx, id, minutes)
	return ackError(ack, err)
}

// ClosePolicyTime removes one lead-time row.
func (g *Gateway) ClosePolicyTime(ctx context.Context, id string) error {
	ack, err := g.client.ClosePolicyTime(ctx, id)
	return ackError(ack, err)
}

// AddPolicyTime creates a lead-time row for a day and shift.
func (g *Gateway) AddPolicyTime(ctx context.Context, input domain.NewPolicyTimeInput) error {
	ack, err := g.client.AddPolicyTime(ctx, legacyclient.AddPolicyTimeRequest{
		RestID:   input.RestaurantID,
		DayNo:    input.DayNo,
		PolicyID: input.PolicyID,
		Minutes:  input.Minutes,
		ShiftNo:  input.ShiftNo,
	})
	return ackError(ack, err)
}

// FAQs reads the partner help entries.
func (g *Gateway) FAQs(ctx context.Context) ([]domain.FAQ, error) {
	payload, err := g.client.FAQs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	faqs := make([]domain.FAQ, 0, len(payload))
	for _, row := range payload {
		faqs = append(faqs, domain.FAQ{
			ID:      row.ID.Str(),
			Title:   row.Title.Str(),
			Content: row.Content.Str(),
		})
	}
	return faqs, nil
}

func ackError(ack *legacyclient.AckPayload, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	if ack != nil && !ack.Status.OK() {
		msg := ack.Text()
		if msg == "" {
			msg = "operation rejected"
		}
		return fmt.Errorf("%w: %s", sharederrors.ErrBadRequest, msg)
	}
	return nil
}

var _ ports.Gateway = (*Gateway)(nil)
