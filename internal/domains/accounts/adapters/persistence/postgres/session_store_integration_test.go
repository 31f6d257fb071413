//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/domain"
	"github.com/enayetchefonline/partner-gateway/internal/platform/migrations"
)

func setupSessionsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("partner_gateway_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestSessionStore_SaveFindDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupSessionsPostgresContainer(t)
	defer cleanup()

	store := NewSessionStore(db)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	session := domain.Session{
		Token:        "tok-1",
		UserID:       "42",
		RestaurantID: "552",
		CreatedAt:    now,
		ExpiresAt:    now.Add(time.Hour),
	}

	require.NoError(t, store.Save(ctx, session))

	fetched, err := store.Find(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "42", fetched.UserID)
	assert.Equal(t, "552", fetched.RestaurantID)

	require.NoError(t, store.Delete(ctx, "tok-1"))
	fetched, err = store.Find(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestSessionStore_SaveUpsertsByToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupSessionsPostgresContainer(t)
	defer cleanup()

	store := NewSessionStore(db)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	session := domain.Session{Token: "tok-1", UserID: "42", RestaurantID: "552", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, session))

	session.RestaurantID = "553"
	require.NoError(t, store.Save(ctx, session))

	fetched, err := store.Find(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "553", fetched.RestaurantID)
}

func TestSessionStore_PurgeExpired(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupSessionsPostgresContainer(t)
	defer cleanup()

	store := NewSessionStore(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.Save(ctx, domain.Session{Token: "live", UserID: "1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, domain.Session{Token: "dead", UserID: "2", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}))

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	fetched, err := store.Find(ctx, "live")
	require.NoError(t, err)
	assert.NotNil(t, fetched)
}
