package storage

import "time"

// Generation is a journal entry describing one generation request.
// Image bytes are never stored.
type Generation struct {
	UserId    int64     `bson:"user_id"`
	Prompt    string    `bson:"prompt"`
	Style     string    `bson:"style"`
	Success   bool      `bson:"success"`
	Reason    string    `bson:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

// StyleStorage keeps the style each user selected. Implementations live for
// the lifetime of the process only; there is no expiry and no persistence.
type StyleStorage interface {
	// GetUserStyle returns an empty string when the user has not chosen a style
	GetUserStyle(userId int64) (string, error)
	// SetUserStyle replaces the user's style
	SetUserStyle(userId int64, style string) error
	Close() error
}

type JournalStorage interface {
	AddGeneration(gen Generation) error
	// GetRecentGenerations returns at most limit entries, newest first
	GetRecentGenerations(userId int64, limit int) ([]Generation, error)
	Close() error
}
