package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a user account row
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ResumeRecord represents a stored resume analysis. Assessment holds the
// full assessment document as it was returned to the client.
type ResumeRecord struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	FileName   string          `json:"file_name"`
	Score      int             `json:"score"`
	Assessment json.RawMessage `json:"assessment"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ResumeSummary is a lightweight view of a stored analysis for listing
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
