package models

import "time"

// Level classifies how much prompt-engineering experience a command assumes.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Valid reports whether l is one of the three recognized levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Command is the UI-facing representation of one reusable prompt template.
//
// Field names follow the dashboard schema (category, usage, estimatedTime,
// isActive, createdBy). The storage layer speaks [CommandRecord]; the two are
// translated losslessly in both directions via [CommandFromRecord] and
// [Command.Record]. Presentation code never sees storage column names.
type Command struct {
	// ID is the opaque unique identifier assigned by the data service
	// on creation (a UUID string).
	ID string `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// Category is an open-ended grouping label ("Sales", "Engineering", ...).
	Category string `json:"category"`

	// Level is one of beginner, intermediate, advanced.
	Level Level `json:"level"`

	// Prompt is the template body the user ultimately copies.
	Prompt string `json:"prompt"`

	// Usage holds optional free-text instructions for applying the prompt.
	Usage string `json:"usage,omitempty"`

	// Tags is a set of lowercase labels. Insertion order is preserved for
	// display; matching treats it as a set.
	Tags Tags `json:"tags"`

	// EstimatedTime is a free-text duration hint, e.g. "10 min".
	EstimatedTime string `json:"estimatedTime,omitempty"`

	// Views and Copies are non-negative usage counters maintained by the
	// data service; the client only mirrors confirmed increments.
	Views  int `json:"views"`
	Copies int `json:"copies"`

	// Popularity is an externally computed ranking score. This repository
	// stores and orders by it but never recomputes it.
	Popularity float64 `json:"popularity"`

	// IsActive is the soft-delete marker. Inactive commands are excluded
	// from every listing the command store serves.
	IsActive bool `json:"isActive"`

	// CreatedBy references the identity that created the command.
	// Zero means unknown/absent (the storage column is nullable).
	CreatedBy int64 `json:"createdBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasTag reports whether the command carries the given tag.
func (c Command) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SharesTag reports whether the two commands have at least one tag in common.
func (c Command) SharesTag(other Command) bool {
	for _, t := range other.Tags {
		if c.HasTag(t) {
			return true
		}
	}
	return false
}
