package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// The password hash is never serialized to clients.
type UserDB struct {
	ID             uuid.UUID  `json:"id" db:"id"`                          // Primary key
	Name           string     `json:"name" db:"name"`                      // Display name
	Username       *string    `json:"username" db:"username"`              // Optional unique username
	PasswordHash   *string    `json:"-" db:"password_hash"`                // Hashed password, optional
	ProfilePicture *string    `json:"profilePicture" db:"profile_picture"` // Data URI or URL, optional
	InvitationCode string     `json:"invitationCode" db:"invitation_code"` // Unique 8-character pairing code
	PartnerID      *uuid.UUID `json:"partnerId" db:"partner_id"`           // Symmetric back-reference to the partner
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`           // Creation timestamp
}
