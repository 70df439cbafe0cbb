package model

import "time"

// User roles. Role metadata travels in the session token; it is not
// re-checked against storage for the lifetime of the token.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// User represents an authenticated user in the system.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // bcrypt digest, never serialized
	Role      string    `json:"role" gorm:"size:20;not null;default:'viewer'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Boards []Board `json:"boards,omitempty" gorm:"foreignKey:OwnerID"`
}
