// Package legacy adapts the back-office account operations to the accounts
// outbound port.
package legacy

import (
	"context"
	"fmt"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/ports"
	sharederrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// Gateway talks to the back-office for authentication and account upkeep.
type Gateway struct {
	client *legacyclient.Client
}

// NewGateway wires the gateway with the shared back-office client.
func NewGateway(client *legacyclient.Client) *Gateway {
	return &Gateway{client: client}
}

// Authenticate performs the funId=37 login and maps the profile.
func (g *Gateway) Authenticate(ctx context.Context, creds domain.Credentials) (*domain.Account, error) {
	payload, err := g.client.Login(ctx, legacyclient.LoginRequest{
		Username: creds.Username,
		Password: creds.Password,
		Platform: creds.Platform,
		Token:    creds.PushToken,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	if payload == nil || !payload.Status.OK() || payload.Details == nil {
		return nil, ports.ErrInvalidCredentials
	}
	account := &domain.Account{
		UserID:       payload.Details.UserID.Str(),
		Username:     payload.Details.Username.Str(),
		RestaurantID: payload.Details.RestID.Str(),
		Email:        payload.Details.Email.Str(),
		Mobile:       payload.Details.MobileNo.Str(),
	}
	for _, branch := range payload.Details.AssignRestaurants {
		account.Branches = append(account.Branches, domain.Branch{
			RestaurantID: branch.RestaurantID.Str(),
			Name:         branch.RestaurantName.Str(),
			Postcode:     branch.Postcode.Str(),
		})
	}
	return account, nil
}

// Logout deregisters the device upstream.
func (g *Gateway) Logout(ctx context.Context, userID, platform, pushToken string) error {
	ack, err := g.client.Logout(ctx, userID, platform, pushToken)
	return ackError(ack, err)
}

// PinConfigured reports whether a device PIN exists for the user.
func (g *Gateway) PinConfigured(ctx context.Context, userID string) (bool, error) {
	payload, err := g.client.PinStatus(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	if payload == nil {
		return false, nil
	}
	return payload.Status.OK() && payload.HasPin.OK(), nil
}

// SetPin registers a device PIN.
func (g *Gateway) SetPin(ctx context.Context, userID, pin string) error {
	ack, err := g.client.SetPin(ctx, userID, pin)
	return ackError(ack, err)
}

// VerifyPin checks a device PIN. A failed ack surfaces as invalid
// credentials rather than an upstream fault.
func (g *Gateway) VerifyPin(ctx context.Context, userID, pin string) error {
	ack, err := g.client.VerifyPin(ctx, userID, pin)
	if err != nil {
		return fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	if ack != nil && !ack.Status.OK() {
		return ports.ErrInvalidCredentials
	}
	return nil
}

// RequestPinReset triggers a PIN reset upstream.
func (g *Gateway) RequestPinReset(ctx context.Context, userID, mobile string) error {
	ack, err := g.client.RequestPinReset(ctx, userID, mobile)
	return ackError(ack, err)
}

// ChangePin swaps the device PIN.
func (g *Gateway) ChangePin(ctx context.Context, userID, oldPin, newPin string) error {
	ack, err := g.client.ChangePincode(ctx, userID, oldPin, newPin)
	return ackError(ack, err)
}

// ChangePassword updates the back-office password.
func (g *Gateway) ChangePassword(ctx context.Context, email, previous, next string) error {
	ack, err := g.client.ChangePassword(ctx, email, previous, next)
	return ackError(ack, err)
}

// AddBranch links a new branch login under the parent restaurant.
func (g *Gateway) AddBranch(ctx context.Context, parentRestaurantID, username, password string) error {
	ack, err := g.client.AddBranch(ctx, parentRestaurantID, username, password)
	return ackError(ack, err)
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
