package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the single shared credential that unlocks the admin panel.
type Admin struct {
	ID           uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username     string    `json:"username" gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
