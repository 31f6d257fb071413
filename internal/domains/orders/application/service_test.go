package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/ports"
	"github.com/enayetchefonline/partner-gateway/internal/shared/daterange"
)

type stubGateway struct {
	list    *domain.OrderList
	detail  *domain.OrderDetail
	err     error
	queries []ports.Query
}

func (s *stubGateway) ListOrders(_ context.Context, q ports.Query) (*domain.OrderList, error) {
	s.queries = append(s.queries, q)
	return s.list, s.err
}

func (s *stubGateway) GetOrder(_ context.Context, q ports.Query, _ string) (*domain.OrderDetail, error) {
	s.queries = append(s.queries, q)
	return s.detail, s.err
}

func testQuery(t *testing.T) ports.Query {
	t.Helper()
	r, err := daterange.NewRange(
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return ports.Query{RestaurantID: "552", Range: r}
}

func TestListOrdersRequiresRestaurant(t *testing.T) {
	svc := NewService(&stubGateway{})

	_, err := svc.ListOrders(context.Background(), ports.Query{})

	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestListOrdersDelegatesToGateway(t *testing.T) {
	gw := &stubGateway{list: &domain.OrderList{Summary: domain.ZeroSummary()}}
	svc := NewService(gw)

	list, err := svc.ListOrders(context.Background(), testQuery(t))

	require.NoError(t, err)
	assert.Same(t, gw.list, list)
	require.Len(t, gw.queries, 1)
	assert.Equal(t, "552", gw.queries[0].RestaurantID)
}

func TestGetOrderRequiresOrderNo(t *testing.T) {
	svc := NewService(&stubGateway{})

	_, err := svc.GetOrder(context.Background(), testQuery(t), "  ")

	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestGetOrderNotFound(t *testing.T) {
	svc := NewService(&stubGateway{})

	_, err := svc.GetOrder(context.Background(), testQuery(t), "X1")

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrderPropagatesGatewayError(t *testing.T) {
	boom := errors.New("upstream down")
	svc := NewService(&stubGateway{err: boom})

	_, err := svc.GetOrder(context.Background(), testQuery(t), "X1")

	assert.ErrorIs(t, err, boom)
}
