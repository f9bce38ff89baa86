package models

import (
	"time"
)

// User is an account that can author recipes, favorite them, and follow
// other authors. Username and email are unique at the storage layer.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	FirstName    string    `gorm:"size:254" json:"first_name"`
	LastName     string    `gorm:"size:254" json:"last_name"`
	PasswordHash string    `gorm:"not null" json:"-"`
}
