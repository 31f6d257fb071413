package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/ports"
)

// ErrInvalidInput indicates missing or malformed use-case input.
var ErrInvalidInput = errors.New("invalid restaurant input")

// Service orchestrates the restaurants bounded context use cases.
type Service struct {
	gateway ports.Gateway
}

// NewService wires the restaurants service with its dependencies.
func NewService(gateway ports.Gateway) *Service {
	return &Service{gateway: gateway}
}

// Summary reads the lifetime dashboard aggregates.
func (s *Service) Summary(ctx context.Context, restaurantID string) (*domain.Summary, error) {
	if err := requireID(restaurantID, "restaurant id"); err != nil {
		return nil, err
	}
	return s.gateway.Summary(ctx, restaurantID)
}

// TodayClosed reports whether online ordering is switched off for today.
func (s *Service) TodayClosed(ctx context.Context, restaurantID string) (bool, error) {
	if err := requireID(restaurantID, "restaurant id"); err != nil {
		return false, err
	}
	return s.gateway.TodayClosed(ctx, restaurantID)
}

// SetTodayClosed switches today's online ordering on or off.
func (s *Service) SetTodayClosed(ctx context.Context, restaurantID, userID string, closed bool) error {
	if err := requireID(restaurantID, "restaurant id"); err != nil {
		return err
	}
	if err := requireID(userID, "user id"); err != nil {
		return err
	}
	return s.gateway.SetTodayClosed(ctx, restaurantID, userID, closed)
}

// OpeningHours reads the online-ordering timetable.
func (s *Service) OpeningHours(ctx context.Context, restaurantID string) ([]domain.Day, error) {
	if err := requireID(restaurantID, "restaurant id"); err != nil {
		return nil, err
	}
	return s.gateway.OpeningHours(ctx, restaurantID)
}

// ReservationHours reads the reservation timetable.
func (s *Service) ReservationHours(ctx context.Context, restaurantID string) ([]domain.Day, error) {
	if err := requireID(restaurantID, "restaurant id"); err != nil {
		return nil, err
	}
	return s.gateway.ReservationHours(ctx, restaurantID)
}

// EditShift updates one shift's open/close times.
func (s *Service) EditShift(ctx context.Context, shiftID string, opensUnix, closesUnix int64) error {
	if err := requireID(shiftID, "shift id"); err != nil {
		return err
	}
	if closesUnix <= opensUnix {
		return fmt.Errorf("%w: closing time must be after opening time", ErrInvalidInput)
	}
	return s.gateway.EditShift(ctx, shiftID, opensUnix, closesUnix)
}

// CloseShift disables one shift row.
func (s *Service) CloseShift(ctx context.Context, shiftID string) error {
	if err := requireID(shiftID, "shift id"); err != nil {
		return err
	}
	return s.gateway.CloseShift(ctx, shiftID)
}

// AddShift creates a shift row on a weekday.
func (s *Service) AddShift(ctx context.Context, input domain.NewShiftInput) error {
	if err := requireID(input.RestaurantID, "restaurant id"); err != nil {
		return err
	}
	if input.Weekday < 1 || input.Weekday > 7 {
		return fmt.Errorf("%w: weekday must be 1..7", ErrInvalidInput)
	}
	if input.ClosesUnix <= input.OpensUnix {
		return fmt.Errorf("%w: closing time must be after opening time", ErrInvalidInput)
	}
	return s.gateway.AddShift(ctx, input)
}

// PolicyTimes reads the delivery/collection lead-time schedule.
func (s *Service) PolicyTimes(ctx context.Context, restaurantID string) ([]domain.PolicyDay, error) {
	if err := requireID(restaurantID, "restaurant id"); err != nil {
		return nil, err
	}
	return s.gateway.PolicyTimes(ctx, restaurantID)
}

// EditPolicyTime updates minutes on one lead-time row.
func (s *Service) EditPolicyTime(ctx context.Context, id string, minutes int) error {
	if err := requireID(id, "policy time id"); err != nil {
		return err
	}
	if minutes < 0 {
		return fmt.Errorf("%w: minutes must not be negative", ErrInvalidInput)
	}
	return s.gateway.EditPolicyTime(ctx, id, minutes)
}

// ClosePolicyTime removes one lead-time row.
func (s *Service) ClosePolicyTime(ctx context.Context, id string) error {
	if err := requireID(id, "policy time id"); err != nil {
		return err
	}
	return s.gateway.ClosePolicyTime(ctx, id)
}

// AddPolicyTime creates a lead-time row for a day and shift.
func (s *Service) AddPolicyTime(ctx context.Context, input domain.NewPolicyTimeInput) error {
	if err := requireID(input.RestaurantID, "restaurant id"); err != nil {
		return err
	}
	if input.Minutes < 0 {
		return fmt.Errorf("%w: minutes must not be negative", ErrInvalidInput)
	}
	return s.gateway.AddPolicyTime(ctx, input)
}

// FAQs reads the partner help entries.
func (s *Service) FAQs(ctx context.Context) ([]domain.FAQ, error) {
	return s.gateway.FAQs(ctx)
}

func requireID(value, label string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, label)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
