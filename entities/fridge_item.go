package entities

import (
	"time"

	"github.com/google/uuid"
)

// FridgeItem carries no freshness status column. The expiry classification
// depends on the clock, so it is recomputed on every read instead of being
// persisted and going stale.
type FridgeItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity"`
	Type      string    `json:"type"`
	ExpiresAt time.Time `json:"expires_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
