package models

import "time"

// Favorite is one row of the many-to-many relation between a user and a
// command. The data service enforces at most one row per (user, command)
// pair; the client assumes that invariant rather than re-checking it.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CommandID string    `json:"command_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}
