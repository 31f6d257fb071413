package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the persisted bounded contexts. Intended to
// replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&sessionRecord{},
	)
}

// Session schema mirrors the accounts session store.
type sessionRecord struct {
	Token        string    `gorm:"primaryKey;column:token;size:128"`
	UserID       string    `gorm:"column:user_id;index"`
	RestaurantID string    `gorm:"column:restaurant_id"`
	ExpiresAt    time.Time `gorm:"column:expires_at;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "partner_sessions" }
