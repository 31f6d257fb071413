package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/enayetchefonline/partner-gateway/internal/domains/reviews/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/reviews/ports"
)

// ErrInvalidInput indicates missing or malformed use-case input.
var ErrInvalidInput = errors.New("invalid review input")

// Service orchestrates the reviews bounded context use cases.
type Service struct {
	gateway ports.Gateway
}

// NewService wires the reviews service with its dependencies.
func NewService(gateway ports.Gateway) *Service {
	return &Service{gateway: gateway}
}

// List fetches the customer reviews for a restaurant.
func (s *Service) List(ctx context.Context, restaurantID string) ([]domain.Review, error) {
	if strings.TrimSpace(restaurantID) == "" {
		return nil, fmt.Errorf("%w: restaurant id is required", ErrInvalidInput)
	}
	return s.gateway.List(ctx, restaurantID)
}

// SetPublished publishes or hides a review.
func (s *Service) SetPublished(ctx context.Context, reviewID string, published bool) error {
	if strings.TrimSpace(reviewID) == "" {
		return fmt.Errorf("%w: review id is required", ErrInvalidInput)
	}
	return s.gateway.SetPublished(ctx, reviewID, published)
}

// Reply posts a restaurant reply to a review.
func (s *Service) Reply(ctx context.Context, reviewID, message string) error {
	if strings.TrimSpace(reviewID) == "" {
		return fmt.Errorf("%w: review id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: reply message is required", ErrInvalidInput)
	}
	return s.gateway.Reply(ctx, reviewID, message)
}

var _ ports.Service = (*Service)(nil)
