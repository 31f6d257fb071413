package domain

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrBadPin        = errors.New("pincode must be 4 digits")
)

// Branch is one restaurant assigned to an account.
type Branch struct {
	RestaurantID string
	Name         string
	Postcode     string
}

// Account is an authenticated back-office partner account. RestaurantID is
// the account's primary branch; Branches lists every branch it may switch to.
type Account struct {
	UserID       string
	Username     string
	RestaurantID string
	Email        string
	Mobile       string
	Branches     []Branch
}

// Credentials are a login attempt. Platform and PushToken describe the
// device registering for notifications.
type Credentials struct {
	Username  string
	Password  string
	Platform  string
	PushToken string
}

// Validate checks the credential invariants.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(c.Password) == "" {
		return ErrEmptyPassword
	}
	return nil
}

// ValidatePin checks the 4-digit device PIN format.
func ValidatePin(pin string) error {
	pin = strings.TrimSpace(pin)
	if len(pin) != 4 {
		return ErrBadPin
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrBadPin
		}
	}
	return nil
}

// Session is an authenticated API session.
type Session struct {
	Token        string
	UserID       string
	RestaurantID string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the session has passed its expiry at the given
// instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// NewSession mints a session for the account with a random token.
func NewSession(account *Account, now time.Time, ttl time.Duration) (Session, error) {
	token, err := newToken()
	if err != nil {
		return Session{}, err
	}
	return Session{
		Token:        token,
		UserID:       account.UserID,
		RestaurantID: account.RestaurantID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
