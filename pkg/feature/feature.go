package feature

import "time"

// Status constrains a collection of flags by their enabled state.
type Status string

const (
	// StatusAll matches every flag regardless of its enabled state.
	StatusAll Status = "all"
	// StatusEnabled matches only enabled flags.
	StatusEnabled Status = "enabled"
	// StatusDisabled matches only disabled flags.
	StatusDisabled Status = "disabled"
)

// Uncategorized is the reserved group label for flags without a category.
const Uncategorized = "uncategorized"

// Flag represents a single feature flag record.
type Flag struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled     bool      `json:"enabled" yaml:"enabled"`
	Category    string    `json:"category" yaml:"category"`
	CreatedAt   time.Time `json:"created_at,omitzero" yaml:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitzero" yaml:"updated_at,omitempty"`
}

// Clone returns an independent copy of the flag.
func (f *Flag) Clone() *Flag {
	c := *f
	return &c
}

// Selection is the filter tuple currently applied to a flag collection.
// The three fields are independent and combine with logical AND.
// The zero value matches every flag.
type Selection struct {
	// Search is matched case-insensitively against flag names and
	// descriptions. It is used literally - leading and trailing
	// whitespace is not trimmed.
	Search string `json:"search"`

	// Status constrains flags by enabled state. An empty Status behaves
	// like StatusAll.
	Status Status `json:"status"`

	// Category must equal the flag category exactly (case-sensitive).
	// An empty string means no category constraint.
	Category string `json:"category"`
}

// StatusCounts aggregates enabled/disabled totals over an entire flag
// collection. Enabled + Disabled always equals Total.
type StatusCounts struct {
	Enabled  int `json:"enabled"`
	Disabled int `json:"disabled"`
	Total    int `json:"total"`
}
