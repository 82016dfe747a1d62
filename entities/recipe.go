package entities

import (
	"github.com/google/uuid"
)

// Recipe stores a generated recipe the user chose to keep. Ingredients and
// Steps are serialized JSON; they are written once at save time and never
// updated afterwards. Unsaving flips Saved only.
type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MealType    string    `json:"meal_type"`
	Ingredients string    `gorm:"type:text" json:"ingredients"`
	Steps       string    `gorm:"type:text" json:"steps"`
	Saved       bool      `json:"saved"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
