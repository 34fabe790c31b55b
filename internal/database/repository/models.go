package repository

import "time"

// Preference is one row of the preferences key/value table.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
