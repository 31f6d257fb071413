package legacy

import (
	"context"
	"fmt"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/reservations/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/reservations/ports"
	sharederrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// Gateway adapts the back-office reservation operations to the outbound port.
type Gateway struct {
	client *legacyclient.Client
}

// NewGateway wires the gateway with the shared back-office client.
func NewGateway(client *legacyclient.Client) *Gateway {
	return &Gateway{client: client}
}

// ListReservations fetches and normalizes one window of reservations. A zero
// range sends empty bounds, letting the backend pick its upcoming horizon.
// The status filter is left empty so every tab arrives in one call.
func (g *Gateway) ListReservations(ctx context.Context, q ports.Query) (*domain.List, error) {
	payload, err := g.client.ReservationList(ctx, q.RestaurantID, q.Range.LegacyFrom(), q.Range.LegacyTo(), "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	list := NormalizeReservationList(payload)
	return &list, nil
}

// Settings reads the accept and auto-confirm toggles.
func (g *Gateway) Settings(ctx context.Context, restaurantID string) (*domain.Settings, error) {
	payload, err := g.client.ReservationSettings(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	settings := domain.Settings{}
	if payload != nil && payload.List != nil {
		settings.AcceptReservations = payload.List.AcceptReservation.Str() == "1"
		settings.AutoConfirm = payload.List.IsAutoReservation.Str() == "1"
	}
	return &settings, nil
}

// SetAcceptReservations turns reservation intake on or off.
func (g *Gateway) SetAcceptReservations(ctx context.Context, restaurantID string, accept bool) error {
	ackOrErr, err := g.client.SetAcceptReservation(ctx, restaurantID, accept)
	return ackError(ackOrErr, err)
}

// SetAutoConfirm toggles automatic confirmation of incoming reservations.
func (g *Gateway) SetAutoConfirm(ctx context.Context, restaurantID string, auto bool) error {
	ackOrErr, err := g.client.SetAutoReservation(ctx, restaurantID, auto)
	return ackError(ackOrErr, err)
}

func ackError(ack *legacyclient.AckPayload, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	if ack != nil && !ack.Status.OK() {
		msg := ack.Text()
		if msg == "" {
			msg = "operation rejected"
		}
		return fmt.Errorf("%w: %s", sharederrors.ErrBadRequest, msg)
	}
	return nil
}

var _ ports.Gateway = (*Gateway)(nil)
