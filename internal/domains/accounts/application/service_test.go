package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/adapters/memory"
	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/ports"
)

type stubGateway struct {
	account    *domain.Account
	authErr    error
	loggedOut  []string
	pinOK      bool
	verifyErr  error
	changedPwd bool
}

func (s *stubGateway) Authenticate(_ context.Context, _ domain.Credentials) (*domain.Account, error) {
	return s.account, s.authErr
}

func (s *stubGateway) Logout(_ context.Context, userID, _, _ string) error {
	s.loggedOut = append(s.loggedOut, userID)
	return nil
}

func (s *stubGateway) PinConfigured(_ context.Context, _ string) (bool, error) { return s.pinOK, nil }
func (s *stubGateway) SetPin(_ context.Context, _, _ string) error             { return nil }
func (s *stubGateway) VerifyPin(_ context.Context, _, _ string) error          { return s.verifyErr }
func (s *stubGateway) RequestPinReset(_ context.Context, _, _ string) error    { return nil }
func (s *stubGateway) ChangePin(_ context.Context, _, _, _ string) error       { return nil }
func (s *stubGateway) ChangePassword(_ context.Context, _, _, _ string) error {
	s.changedPwd = true
	return nil
}
func (s *stubGateway) AddBranch(_ context.Context, _, _, _ string) error { return nil }

func validCreds() domain.Credentials {
	return domain.Credentials{Username: "kitchen", Password: "secret"}
}

func TestLoginMintsSession(t *testing.T) {
	gw := &stubGateway{account: &domain.Account{UserID: "7", RestaurantID: "552"}}
	store := memory.NewSessionStore()
	svc := NewService(gw, store, WithSessionTTL(time.Hour))

	result, err := svc.Login(context.Background(), validCreds())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Session.Token)
	assert.Equal(t, "7", result.Session.UserID)
	assert.Equal(t, "552", result.Session.RestaurantID)

	session, err := svc.Authorize(context.Background(), result.Session.Token)
	require.NoError(t, err)
	assert.Equal(t, "7", session.UserID)
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	svc := NewService(&stubGateway{}, memory.NewSessionStore())

	_, err := svc.Login(context.Background(), domain.Credentials{Username: "kitchen"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginPropagatesInvalidCredentials(t *testing.T) {
	gw := &stubGateway{authErr: ports.ErrInvalidCredentials}
	svc := NewService(gw, memory.NewSessionStore())

	_, err := svc.Login(context.Background(), validCreds())

	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestAuthorizeRejectsExpiredSession(t *testing.T) {
	gw := &stubGateway{account: &domain.Account{UserID: "7"}}
	store := memory.NewSessionStore()
	current := time.Now()
	svc := NewService(gw, store,
		WithSessionTTL(time.Minute),
		WithClock(func() time.Time { return current }),
	)

	result, err := svc.Login(context.Background(), validCreds())
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = svc.Authorize(context.Background(), result.Session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	gw := &stubGateway{account: &domain.Account{UserID: "7"}}
	store := memory.NewSessionStore()
	svc := NewService(gw, store)

	result, err := svc.Login(context.Background(), validCreds())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Session.Token, "ios", "push-token"))
	assert.Equal(t, []string{"7"}, gw.loggedOut)

	_, err = svc.Authorize(context.Background(), result.Session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSetPinValidatesFormat(t *testing.T) {
	svc := NewService(&stubGateway{}, memory.NewSessionStore())

	assert.ErrorIs(t, svc.SetPin(context.Background(), "7", "12a4"), ErrInvalidInput)
	assert.ErrorIs(t, svc.SetPin(context.Background(), "7", "123"), ErrInvalidInput)
	assert.NoError(t, svc.SetPin(context.Background(), "7", "1234"))
}

func TestChangePasswordRequiresAllFields(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw, memory.NewSessionStore())

	assert.ErrorIs(t, svc.ChangePassword(context.Background(), "a@b.c", "", "next"), ErrInvalidInput)
	require.NoError(t, svc.ChangePassword(context.Background(), "a@b.c", "old", "next"))
	assert.True(t, gw.changedPwd)
}
