package models

import (
	"time"

	"github.com/google/uuid"
)

// Status types form a closed set. Presentation fields of the preset types
// come from a fixed metadata table; only "custom" is caller-supplied.
const (
	StatusFree     = "free"
	StatusBusy     = "busy"
	StatusMeeting  = "meeting"
	StatusSleeping = "sleeping"
	StatusCustom   = "custom"
)

// StatusDB represents a status row in the database.
type StatusDB struct {
	ID        uuid.UUID  `json:"id" db:"id"`               // Primary key
	UserID    uuid.UUID  `json:"userId" db:"user_id"`      // Owning user
	Type      string     `json:"type" db:"type"`           // One of the status type constants
	Title     string     `json:"title" db:"title"`         // Display title
	Message   *string    `json:"message" db:"message"`     // Optional free-text message
	Icon      string     `json:"icon" db:"icon"`           // Icon name
	Color     string     `json:"color" db:"color"`         // Color token
	ExpiresAt *time.Time `json:"expiresAt" db:"expires_at"` // Advisory expiry, never swept
	IsActive  bool       `json:"isActive" db:"is_active"`  // At most one active row per user
	CreatedAt time.Time  `json:"createdAt" db:"created_at"` // Insertion timestamp
}

// StatusMeta holds the fixed presentation fields of a preset status type.
type StatusMeta struct {
	Title   string
	Icon    string
	Color   string
	Message string
}

// StatusMetaForType returns the presentation metadata for a preset status
// type. The second return value is false for "custom" and unknown types.
func StatusMetaForType(statusType string) (StatusMeta, bool) {
	switch statusType {
	case StatusFree:
		return StatusMeta{Title: "Free", Icon: "check", Color: "success", Message: "Available now"}, true
	case StatusBusy:
		return StatusMeta{Title: "Busy", Icon: "times", Color: "danger", Message: "Do not disturb"}, true
	case StatusMeeting:
		return StatusMeta{Title: "Meeting", Icon: "briefcase", Color: "info", Message: "In a meeting"}, true
	case StatusSleeping:
		return StatusMeta{Title: "Sleeping", Icon: "moon", Color: "purple", Message: "Catching some Z's"}, true
	default:
		return StatusMeta{}, false
	}
}

// ValidStatusType reports whether statusType belongs to the closed set.
func ValidStatusType(statusType string) bool {
	if statusType == StatusCustom {
		return true
	}
	_, ok := StatusMetaForType(statusType)
	return ok
}
