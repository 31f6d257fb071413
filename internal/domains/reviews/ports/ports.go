package ports

import (
	"context"

	"github.com/enayetchefonline/partner-gateway/internal/domains/reviews/domain"
)

// Gateway is the outbound port to the back-office review operations.
type Gateway interface {
	List(ctx context.Context, restaurantID string) ([]domain.Review, error)
	SetPublished(ctx context.Context, reviewID string, published bool) error
	Reply(ctx context.Context, reviewID, message string) error
}

// Service defines the reviews use cases exposed to adapters.
type Service interface {
	List(ctx context.Context, restaurantID string) ([]domain.Review, error)
	SetPublished(ctx context.Context, reviewID string, published bool) error
	Reply(ctx context.Context, reviewID, message string) error
}
