package ports

import (
	"context"
	"errors"

	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/domain"
)

// ErrInvalidCredentials indicates the back-office refused a login attempt.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Gateway is the outbound port to the back-office account operations.
type Gateway interface {
	Authenticate(ctx context.Context, creds domain.Credentials) (*domain.Account, error)
	Logout(ctx context.Context, userID, platform, pushToken string) error
	PinConfigured(ctx context.Context, userID string) (bool, error)
	SetPin(ctx context.Context, userID, pin string) error
	VerifyPin(ctx context.Context, userID, pin string) error
	RequestPinReset(ctx context.Context, userID, mobile string) error
	ChangePin(ctx context.Context, userID, oldPin, newPin string) error
	ChangePassword(ctx context.Context, email, previous, next string) error
	AddBranch(ctx context.Context, parentRestaurantID, username, password string) error
}

// SessionStore abstracts session persistence for the API's own tokens.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Find(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// LoginResult pairs the account profile with its freshly minted session.
type LoginResult struct {
	Account *domain.Account
	Session domain.Session
}

// Service defines the accounts use cases exposed to adapters.
type Service interface {
	Login(ctx context.Context, creds domain.Credentials) (*LoginResult, error)
	Logout(ctx context.Context, token, platform, pushToken string) error
	Authorize(ctx context.Context, token string) (*domain.Session, error)
	PinConfigured(ctx context.Context, userID string) (bool, error)
	SetPin(ctx context.Context, userID, pin string) error
	VerifyPin(ctx context.Context, userID, pin string) error
	RequestPinReset(ctx context.Context, userID, mobile string) error
	ChangePin(ctx context.Context, userID, oldPin, newPin string) error
	ChangePassword(ctx context.Context, email, previous, next string) error
	AddBranch(ctx context.Context, parentRestaurantID, username, password string) error
}
