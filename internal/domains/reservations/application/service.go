package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/enayetchefonline/partner-gateway/internal/domains/reservations/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/reservations/ports"
)

// Service orchestrates the reservations bounded context use cases.
type Service struct {
	gateway ports.Gateway
}

// NewService wires the reservations service with its dependencies.
func NewService(gateway ports.Gateway) *Service {
	return &Service{gateway: gateway}
}

// ListReservations fetches one date range and splits it into tabs.
func (s *Service) ListReservations(ctx context.Context, q ports.Query) (*domain.List, error) {
	if err := requireRestaurant(q.RestaurantID); err != nil {
		return nil, err
	}
	return s.gateway.ListReservations(ctx, q)
}

// Settings reads the restaurant's reservation toggles.
func (s *Service) Settings(ctx context.Context, restaurantID string) (*domain.Settings, error) {
	if err := requireRestaurant(restaurantID); err != nil {
		return nil, err
	}
	return s.gateway.Settings(ctx, restaurantID)
}

// SetAcceptReservations turns reservation intake on or off.
func (s *Service) SetAcceptReservations(ctx context.Context, restaurantID string, accept bool) error {
	if err := requireRestaurant(restaurantID); err != nil {
		return err
	}
	return s.gateway.SetAcceptReservations(ctx, restaurantID, accept)
}

// SetAutoConfirm toggles automatic confirmation of incoming reservations.
func (s *Service) SetAutoConfirm(ctx context.Context, restaurantID string, auto bool) error {
	if err := requireRestaurant(restaurantID); err != nil {
		return err
	}
	return s.gateway.SetAutoConfirm(ctx, restaurantID, auto)
}

func requireRestaurant(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: restaurant id is required", ErrInvalidQuery)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
