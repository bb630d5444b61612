package models

// NewCommand is the creation input for a command.
//
// Title, Description, Category, Level, and Prompt are required and must be
// non-empty after trimming; everything else is optional. Counters,
// popularity, and the active flag are not part of the input: the data
// service assigns their defaults (0, 0, 0, true) at insert time.
type NewCommand struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Level         Level  `json:"level"`
	Prompt        string `json:"prompt"`
	Usage         string `json:"usage,omitempty"`
	Tags          Tags   `json:"tags,omitempty"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
}

// CommandPatch is a sparse update: nil fields are left untouched by the data
// service, non-nil fields overwrite the stored value. The updated_at column
// is always bumped server-side regardless of which fields are present.
type CommandPatch struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category_name,omitempty"`
	Level         *Level   `json:"level,omitempty"`
	Prompt        *string  `json:"prompt,omitempty"`
	Usage         *string  `json:"usage_instructions,omitempty"`
	Tags          *Tags    `json:"tags,omitempty"`
	EstimatedTime *string  `json:"estimated_time,omitempty"`
	Popularity    *float64 `json:"popularity,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p CommandPatch) Empty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Category == nil &&
		p.Level == nil &&
		p.Prompt == nil &&
		p.Usage == nil &&
		p.Tags == nil &&
		p.EstimatedTime == nil &&
		p.Popularity == nil
}
