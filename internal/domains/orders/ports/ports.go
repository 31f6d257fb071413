package ports

import (
	"context"

	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/domain"
	"github.com/enayetchefonline/partner-gateway/internal/shared/daterange"
)

// Query identifies whose orders to fetch and for which range. Restaurant
// selection is explicit context, never ambient state.
type Query struct {
	RestaurantID string
	Range        daterange.Range
}

// Gateway is the outbound port to the back-office order listing.
type Gateway interface {
	ListOrders(ctx context.Context, q Query) (*domain.OrderList, error)
	GetOrder(ctx context.Context, q Query, orderNo string) (*domain.OrderDetail, error)
}

// Service defines the orders use cases exposed to adapters (inbound port).
type Service interface {
	ListOrders(ctx context.Context, q Query) (*domain.OrderList, error)
	GetOrder(ctx context.Context, q Query, orderNo string) (*domain.OrderDetail, error)
}
