package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enayetchefonline/partner-gateway/internal/domains/reservations/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/reservations/ports"
	"github.com/enayetchefonline/partner-gateway/internal/shared/daterange"
)

type stubGateway struct {
	lastQuery ports.Query
	list      *domain.List
	toggles   map[string]bool
	err       error
}

func (s *stubGateway) ListReservations(_ context.Context, q ports.Query) (*domain.List, error) {
	s.lastQuery = q
	return s.list, s.err
}

func (s *stubGateway) Settings(context.Context, string) (*domain.Settings, error) {
	return &domain.Settings{AcceptReservations: true}, s.err
}

func (s *stubGateway) SetAcceptReservations(_ context.Context, _ string, accept bool) error {
	s.record("accept", accept)
	return s.err
}

func (s *stubGateway) SetAutoConfirm(_ context.Context, _ string, auto bool) error {
	s.record("auto", auto)
	return s.err
}

func (s *stubGateway) record(key string, value bool) {
	if s.toggles == nil {
		s.toggles = map[string]bool{}
	}
	s.toggles[key] = value
}

func TestListReservationsRequiresRestaurant(t *testing.T) {
	svc := NewService(&stubGateway{})

	_, err := svc.ListReservations(context.Background(), ports.Query{})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestListReservationsDelegatesQuery(t *testing.T) {
	gw := &stubGateway{list: &domain.List{}}
	svc := NewService(gw)

	window, err := daterange.Resolve(daterange.PresetNextWeek, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	query := ports.Query{RestaurantID: "889", Range: window}

	list, err := svc.ListReservations(context.Background(), query)
	require.NoError(t, err)
	assert.Same(t, gw.list, list)
	assert.Equal(t, query, gw.lastQuery)
}

func TestTogglesRequireRestaurant(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	assert.ErrorIs(t, svc.SetAcceptReservations(context.Background(), "", true), ErrInvalidQuery)
	assert.ErrorIs(t, svc.SetAutoConfirm(context.Background(), " ", true), ErrInvalidQuery)

	require.NoError(t, svc.SetAcceptReservations(context.Background(), "889", false))
	require.NoError(t, svc.SetAutoConfirm(context.Background(), "889", true))
	assert.Equal(t, map[string]bool{"accept": false, "auto": true}, gw.toggles)
}
