package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/ports"
)

type stubGateway struct {
	ports.Gateway
	addedShifts []domain.NewShiftInput
	edits       map[string][2]int64
}

func (s *stubGateway) AddShift(_ context.Context, input domain.NewShiftInput) error {
	s.addedShifts = append(s.addedShifts, input)
	return nil
}

func (s *stubGateway) EditShift(_ context.Context, shiftID string, opens, closes int64) error {
	if s.edits == nil {
		s.edits = map[string][2]int64{}
	}
	s.edits[shiftID] = [2]int64{opens, closes}
	return nil
}

func (s *stubGateway) EditPolicyTime(context.Context, string, int) error { return nil }

func TestAddShiftValidatesWeekdayAndTimes(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	base := domain.NewShiftInput{RestaurantID: "889", Weekday: 3, OpensUnix: 1000, ClosesUnix: 2000}

	bad := base
	bad.Weekday = 0
	assert.ErrorIs(t, svc.AddShift(context.Background(), bad), ErrInvalidInput)

	bad = base
	bad.Weekday = 8
	assert.ErrorIs(t, svc.AddShift(context.Background(), bad), ErrInvalidInput)

	bad = base
	bad.ClosesUnix = bad.OpensUnix
	assert.ErrorIs(t, svc.AddShift(context.Background(), bad), ErrInvalidInput)

	require.NoError(t, svc.AddShift(context.Background(), base))
	require.Len(t, gw.addedShifts, 1)
	assert.Equal(t, base, gw.addedShifts[0])
}

func TestEditShiftRejectsInvertedTimes(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	assert.ErrorIs(t, svc.EditShift(context.Background(), "55", 2000, 1000), ErrInvalidInput)
	assert.ErrorIs(t, svc.EditShift(context.Background(), " ", 1000, 2000), ErrInvalidInput)

	require.NoError(t, svc.EditShift(context.Background(), "55", 1000, 2000))
	assert.Equal(t, [2]int64{1000, 2000}, gw.edits["55"])
}

func TestEditPolicyTimeRejectsNegativeMinutes(t *testing.T) {
	svc := NewService(&stubGateway{})

	assert.ErrorIs(t, svc.EditPolicyTime(context.Background(), "9", -5), ErrInvalidInput)
	assert.NoError(t, svc.EditPolicyTime(context.Background(), "9", 0))
}
