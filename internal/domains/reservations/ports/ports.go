package ports

import (
	"context"

	"github.com/enayetchefonline/partner-gateway/internal/domains/reservations/domain"
	"github.com/enayetchefonline/partner-gateway/internal/shared/daterange"
)

// Query identifies whose reservations to fetch and for which range.
type Query struct {
	RestaurantID string
	Range        daterange.Range
}

// Gateway is the outbound port to the back-office reservation operations.
type Gateway interface {
	ListReservations(ctx context.Context, q Query) (*domain.List, error)
	Settings(ctx context.Context, restaurantID string) (*domain.Settings, error)
	SetAcceptReservations(ctx context.Context, restaurantID string, accept bool) error
	SetAutoConfirm(ctx context.Context, restaurantID string, auto bool) error
}

// Service defines the reservations use cases exposed to adapters.
type Service interface {
	ListReservations(ctx context.Context, q Query) (*domain.List, error)
	Settings(ctx context.Context, restaurantID string) (*domain.Settings, error)
	SetAcceptReservations(ctx context.Context, restaurantID string, accept bool) error
	SetAutoConfirm(ctx context.Context, restaurantID string, auto bool) error
}
