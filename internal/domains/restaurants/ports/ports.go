package ports

import (
	"context"

	"github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/domain"
)

// Gateway is the outbound port to the back-office restaurant operations.
type Gateway interface {
	Summary(ctx context.Context, restaurantID string) (*domain.Summary, error)
	TodayClosed(ctx context.Context, restaurantID string) (bool, error)
	SetTodayClosed(ctx context.Context, restaurantID, userID string, closed bool) error

	OpeningHours(ctx context.Context, restaurantID string) ([]domain.Day, error)
	ReservationHours(ctx context.Context, restaurantID string) ([]domain.Day, error)
	EditShift(ctx context.Context, shiftID string, opensUnix, closesUnix int64) error
	CloseShift(ctx context.Context, shiftID string) error
	AddShift(ctx context.Context, input domain.NewShiftInput) error

	PolicyTimes(ctx context.Context, restaurantID string) ([]domain.PolicyDay, error)
	EditPolicyTime(ctx context.Context, id string, minutes int) error
	ClosePolicyTime(ctx context.Context, id string) error
	AddPolicyTime(ctx context.Context, input domain.NewPolicyTimeInput) error

	FAQs(ctx context.Context) ([]domain.FAQ, error)
}

// Service defines the restaurants use cases exposed to adapters. It mirrors
// the gateway; validation happens at the application layer.
type Service interface {
	Summary(ctx context.Context, restaurantID string) (*domain.Summary, error)
	TodayClosed(ctx context.Context, restaurantID string) (bool, error)
	SetTodayClosed(ctx context.Context, restaurantID, userID string, closed bool) error

	OpeningHours(ctx context.Context, restaurantID string) ([]domain.Day, error)
	ReservationHours(ctx context.Context, restaurantID string) ([]domain.Day, error)
	EditShift(ctx context.Context, shiftID string, opensUnix, closesUnix int64) error
	CloseShift(ctx context.Context, shiftID string) error
	AddShift(ctx context.Context, input domain.NewShiftInput) error

	PolicyTimes(ctx context.Context, restaurantID string) ([]domain.PolicyDay, error)
	EditPolicyTime(ctx context.Context, id string, minutes int) error
	ClosePolicyTime(ctx context.Context, id string) error
	AddPolicyTime(ctx context.Context, input domain.NewPolicyTimeInput) error

	FAQs(ctx context.Context) ([]domain.FAQ, error)
}
