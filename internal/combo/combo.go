// Package combo holds the combo records (trigger keyword to expansion
// snippet) and the shared list the rest of the application mutates.
package combo

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

// Combo is a single trigger-to-snippet record. Timestamps are kept as
// strings so hand-edited combo files with loosely formatted dates still
// load; use CreatedAt/ModifiedAt for comparisons.
type Combo struct {
	ID       string `json:"id"                 yaml:"id"`
	Name     string `json:"name"               yaml:"name"`
	Keyword  string `json:"keyword"            yaml:"keyword"`
	Snippet  string `json:"snippet"            yaml:"snippet"`
	Markdown bool   `json:"markdown,omitempty" yaml:"markdown,omitempty"`
	Enabled  bool   `json:"enabled"            yaml:"enabled"`
	Created  string `json:"created"            yaml:"created"`
	Modified string `json:"modified"           yaml:"modified"`
}

// New returns a blank combo with a fresh identity, ready for the edit
// form.
func New() *Combo {
	now := time.Now().Format(time.RFC3339)
	return &Combo{
		ID:       uuid.NewString(),
		Enabled:  true,
		Created:  now,
		Modified: now,
	}
}

// Duplicate returns a copy of src with the same field values but a
// distinct identity and fresh timestamps.
func Duplicate(src *Combo) *Combo {
	dup := *src
	now := time.Now().Format(time.RFC3339)
	dup.ID = uuid.NewString()
	dup.Created = now
	dup.Modified = now
	return &dup
}

// MarkEdited refreshes the modification timestamp.
func (c *Combo) MarkEdited() {
	c.Modified = time.Now().Format(time.RFC3339)
}

func (c *Combo) CreatedAt() time.Time {
	return parseTimestamp(c.Created)
}

func (c *Combo) ModifiedAt() time.Time {
	return parseTimestamp(c.Modified)
}

func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}
	}
	return t
}
