package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is an ordered list of lowercase labels attached to a command.
//
// It is stored as a jsonb array in PostgreSQL and as serialized JSON in the
// client-side SQLite cache, so it implements [sql.Scanner] and
// [driver.Valuer].
type Tags []string

// Scan implements sql.Scanner. NULL scans to an empty, non-nil slice.
func (t *Tags) Scan(src any) error {
	if src == nil {
		*t = Tags{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported source type %T for tags", src)
	}

	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}

	return json.Unmarshal(raw, t)
}

// Value implements driver.Valuer. A nil slice is persisted as the empty
// JSON array, never as NULL.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}
