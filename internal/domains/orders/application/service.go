package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/ports"
)

// Service orchestrates the orders bounded context use cases.
type Service struct {
	gateway ports.Gateway
}

// NewService wires the orders service with its dependencies.
func NewService(gateway ports.Gateway) *Service {
	return &Service{gateway: gateway}
}

// ListOrders fetches and normalizes one date range of orders.
func (s *Service) ListOrders(ctx context.Context, q ports.Query) (*domain.OrderList, error) {
	if err := validate(q); err != nil {
		return nil, err
	}
	return s.gateway.ListOrders(ctx, q)
}

// GetOrder resolves a single order detail. The back-office has no detail
// operation, so the gateway refetches the range and selects by order number.
func (s *Service) GetOrder(ctx context.Context, q ports.Query, orderNo string) (*domain.OrderDetail, error) {
	if err := validate(q); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderNo) == "" {
		return nil, fmt.Errorf("%w: order number is required", ErrInvalidQuery)
	}
	detail, err := s.gateway.GetOrder(ctx, q, orderNo)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderNo)
	}
	return detail, nil
}

func validate(q ports.Query) error {
	if strings.TrimSpace(q.RestaurantID) == "" {
		return fmt.Errorf("%w: restaurant id is required", ErrInvalidQuery)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
