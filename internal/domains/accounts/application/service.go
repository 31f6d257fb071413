package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/ports"
)

// DefaultSessionTTL is the fallback session lifetime when none is configured.
const DefaultSessionTTL = 24 * time.Hour

// Service exposes the accounts bounded context use cases.
type Service struct {
	gateway  ports.Gateway
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time
}

type Option func(*Service)

// WithSessionTTL overrides the session lifetime.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the accounts service with its dependencies.
func NewService(gateway ports.Gateway, sessions ports.SessionStore, opts ...Option) *Service {
	s := &Service{
		gateway:  gateway,
		sessions: sessions,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Login authenticates against the back-office and mints an API session.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	account, err := s.gateway.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}
	session, err := domain.NewSession(account, s.now(), s.ttl)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return &ports.LoginResult{Account: account, Session: session}, nil
}

// Logout drops the API session and deregisters the device upstream. A
// failed upstream deregistration still invalidates the local session.
func (s *Service) Logout(ctx context.Context, token, platform, pushToken string) error {
	session, err := s.Authorize(ctx, token)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return err
	}
	return s.gateway.Logout(ctx, session.UserID, platform, pushToken)
}

// Authorize resolves a bearer token to its session, rejecting unknown and
// expired tokens.
func (s *Service) Authorize(ctx context.Context, token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrSessionNotFound
	}
	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(s.now()) {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// PinConfigured reports whether the user has a device PIN registered.
func (s *Service) PinConfigured(ctx context.Context, userID string) (bool, error) {
	if err := requireField(userID, "user id"); err != nil {
		return false, err
	}
	return s.gateway.PinConfigured(ctx, userID)
}

// SetPin registers a new device PIN.
func (s *Service) SetPin(ctx context.Context, userID, pin string) error {
	if err := requireField(userID, "user id"); err != nil {
		return err
	}
	if err := domain.ValidatePin(pin); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.gateway.SetPin(ctx, userID, pin)
}

// VerifyPin checks a device PIN against the back-office.
func (s *Service) VerifyPin(ctx context.Context, userID, pin string) error {
	if err := requireField(userID, "user id"); err != nil {
		return err
	}
	if err := domain.ValidatePin(pin); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.gateway.VerifyPin(ctx, userID, pin)
}

// RequestPinReset triggers a PIN reset via the registered mobile number.
func (s *Service) RequestPinReset(ctx context.Context, userID, mobile string) error {
	if err := requireField(userID, "user id"); err != nil {
		return err
	}
	if err := requireField(mobile, "mobile number"); err != nil {
		return err
	}
	return s.gateway.RequestPinReset(ctx, userID, mobile)
}

// ChangePin swaps an existing device PIN.
func (s *Service) ChangePin(ctx context.Context, userID, oldPin, newPin string) error {
	if err := requireField(userID, "user id"); err != nil {
		return err
	}
	if err := domain.ValidatePin(oldPin); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidatePin(newPin); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.gateway.ChangePin(ctx, userID, oldPin, newPin)
}

// ChangePassword updates the back-office password for an account email.
func (s *Service) ChangePassword(ctx context.Context, email, previous, next string) error {
	if err := requireField(email, "email"); err != nil {
		return err
	}
	if err := requireField(previous, "current password"); err != nil {
		return err
	}
	if err := requireField(next, "new password"); err != nil {
		return err
	}
	return s.gateway.ChangePassword(ctx, email, previous, next)
}

// AddBranch links a new branch login under the parent restaurant.
func (s *Service) AddBranch(ctx context.Context, parentRestaurantID, username, password string) error {
	if err := requireField(parentRestaurantID, "parent restaurant id"); err != nil {
		return err
	}
	if err := requireField(username, "username"); err != nil {
		return err
	}
	if err := requireField(password, "password"); err != nil {
		return err
	}
	return s.gateway.AddBranch(ctx, parentRestaurantID, username, password)
}

func requireField(value, label string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, label)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
