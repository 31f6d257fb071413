package legacy

import (
	"context"
	"fmt"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/ports"
	sharederrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// Gateway adapts the back-office order listing to the orders outbound port.
type Gateway struct {
	client *legacyclient.Client
}

// NewGateway wires the gateway with the shared back-office client.
func NewGateway(client *legacyclient.Client) *Gateway {
	return &Gateway{client: client}
}

// ListOrders fetches and normalizes one date range of orders.
func (g *Gateway) ListOrders(ctx context.Context, q ports.Query) (*domain.OrderList, error) {
	payload, err := g.client.OrderList(ctx, q.RestaurantID, q.Range.LegacyFrom(), q.Range.LegacyTo())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	list := NormalizeOrderList(payload)
	return &list, nil
}

// GetOrder refetches the range and selects a single order by number. The
// back-office exposes no detail operation, so this is the only way in.
func (g *Gateway) GetOrder(ctx context.Context, q ports.Query, orderNo string) (*domain.OrderDetail, error) {
	payload, err := g.client.OrderList(ctx, q.RestaurantID, q.Range.LegacyFrom(), q.Range.LegacyTo())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	if payload == nil || !payload.Status.OK() {
		return nil, nil
	}
	records, ok := payload.OrderRecords()
	if !ok {
		return nil, nil
	}
	for _, rec := range records {
		if rec.OrderNo.Str() == orderNo {
			detail := NormalizeOrderDetail(rec)
			return &detail, nil
		}
	}
	return nil, nil
}

var _ ports.Gateway = (*Gateway)(nil)
