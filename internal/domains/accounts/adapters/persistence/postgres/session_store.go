package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/domain"
	accountports "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/ports"
)

// SessionStore persists API sessions in PostgreSQL.
type SessionStore struct {
	db *gorm.DB
}

// NewSessionStore wires a PostgreSQL-backed session store. Caller owns the
// DB lifecycle.
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

type sessionRecord struct {
	Token        string    `gorm:"primaryKey;column:token;size:128"`
	UserID       string    `gorm:"column:user_id;index"`
	RestaurantID string    `gorm:"column:restaurant_id"`
	ExpiresAt    time.Time `gorm:"column:expires_at;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "partner_sessions" }

// Save upserts a session keyed by token.
func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	if strings.TrimSpace(session.Token) == "" {
		return errors.New("session token is required")
	}
	rec := sessionRecord{
		Token:        session.Token,
		UserID:       session.UserID,
		RestaurantID: session.RestaurantID,
		ExpiresAt:    session.ExpiresAt,
		CreatedAt:    session.CreatedAt,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "restaurant_id", "expires_at", "updated_at"}),
		}).
		Create(&rec).Error
}

// Find loads a session by token; nil when unknown.
func (s *SessionStore) Find(ctx context.Context, token string) (*domain.Session, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var rec sessionRecord
	err := s.db.WithContext(ctx).First(&rec, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		Token:        rec.Token,
		UserID:       rec.UserID,
		RestaurantID: rec.RestaurantID,
		CreatedAt:    rec.CreatedAt,
		ExpiresAt:    rec.ExpiresAt,
	}, nil
}

// Delete removes a session by token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&sessionRecord{}, "token = ?", token).Error
}

// PurgeExpired removes all expired sessions and reports how many went away.
// Used by the session-purger housekeeping binary.
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	if err := s.ensureDB(); err != nil {
		return 0, err
	}
	result := s.db.WithContext(ctx).Where("expires_at <= ?", time.Now()).Delete(&sessionRecord{})
	return result.RowsAffected, result.Error
}

func (s *SessionStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres session store not configured")
	}
	return nil
}

var _ accountports.SessionStore = (*SessionStore)(nil)
