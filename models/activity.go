package models

import "time"

// Activity types accepted by the log_user_activity procedure.
const (
	ActivityView = "view"
	ActivityCopy = "copy"
)

// ActivityEntry records one (user, command, activity) tuple for analytics.
//
// This layer only ever writes activity entries; nothing in the client reads
// them back. Metadata is free-form JSON passed through to the jsonb column.
type ActivityEntry struct {
	UserID       int64             `json:"user_id"`
	CommandID    string            `json:"command_id"`
	ActivityType string            `json:"activity_type"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at,omitempty"`
}
