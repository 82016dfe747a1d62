package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email                string    `gorm:"uniqueIndex" json:"email"`
	Password             string    `json:"-"`
	Name                 string    `json:"name"`
	Username             string    `json:"username"`
	Bio                  string    `json:"bio"`
	Language             string    `json:"language"`
	Theme                string    `json:"theme"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	Role                 string    `json:"role"`
	IsVerified           bool      `json:"is_verified"`
	ProfilePictureURL    string    `json:"profile_picture_url,omitempty"`

	FridgeItems []*FridgeItem `gorm:"foreignKey:UserID"`
	Recipes     []*Recipe     `gorm:"foreignKey:UserID"`
	Timestamp
}
