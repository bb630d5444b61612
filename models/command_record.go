package models

import "time"

// CommandRecord is the storage-schema representation of a command row.
//
// JSON tags match the data service's column names exactly; this struct is the
// wire format between server and client. The dashboard-facing counterpart is
// [Command]. Renamed columns: category_name, usage_instructions,
// estimated_time, is_active, created_by. Everything else passes through
// by name.
type CommandRecord struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	CategoryName     string    `json:"category_name"`
	Level            Level     `json:"level"`
	Prompt           string    `json:"prompt"`
	UsageInstruction string    `json:"usage_instructions,omitempty"`
	Tags             Tags      `json:"tags"`
	EstimatedTime    string    `json:"estimated_time,omitempty"`
	Views            int       `json:"views"`
	Copies           int       `json:"copies"`
	Popularity       float64   `json:"popularity"`
	IsActive         bool      `json:"is_active"`
	CreatedBy        int64     `json:"created_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the CommandRecord model.
func (r CommandRecord) TableName() string {
	return "commands"
}

// CommandFromRecord translates a storage row into the UI schema.
//
// A nil/absent tag list becomes an empty, non-nil slice so that UI code can
// range over it without a nil check.
func CommandFromRecord(r CommandRecord) Command {
	tags := r.Tags
	if tags == nil {
		tags = Tags{}
	}

	return Command{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.CategoryName,
		Level:         r.Level,
		Prompt:        r.Prompt,
		Usage:         r.UsageInstruction,
		Tags:          tags,
		EstimatedTime: r.EstimatedTime,
		Views:         r.Views,
		Copies:        r.Copies,
		Popularity:    r.Popularity,
		IsActive:      r.IsActive,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Record translates the UI schema back into a storage row. The translation is
// lossless for every editable field, mirroring [CommandFromRecord].
func (c Command) Record() CommandRecord {
	tags := c.Tags
	if tags == nil {
		tags = Tags{}
	}

	return CommandRecord{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		CategoryName:     c.Category,
		Level:            c.Level,
		Prompt:           c.Prompt,
		UsageInstruction: c.Usage,
		Tags:             tags,
		EstimatedTime:    c.EstimatedTime,
		Views:            c.Views,
		Copies:           c.Copies,
		Popularity:       c.Popularity,
		IsActive:         c.IsActive,
		CreatedBy:        c.CreatedBy,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
