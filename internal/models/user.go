package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`

	// Single-use password-reset token; nil when none is outstanding.
	ResetToken *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
