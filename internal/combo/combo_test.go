package combo

import (
	"testing"
	"time"
)

func TestNewCombo(t *testing.T) {
	t.Parallel()

	c := New()

	if c.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if !c.Enabled {
		t.Fatalf("expected new combos to be enabled")
	}
	if c.Created == "" || c.Modified == "" {
		t.Fatalf("expected timestamps to be set, got created %q modified %q", c.Created, c.Modified)
	}
}

func TestDuplicate(t *testing.T) {
	t.Parallel()

	src := New()
	src.Name = "signature"
	src.Keyword = "sig"
	src.Snippet = "Best regards"
	src.Markdown = true
	src.Created = "2020-01-01T00:00:00Z"
	src.Modified = "2020-01-02T00:00:00Z"

	dup := Duplicate(src)

	if dup.ID == src.ID {
		t.Fatalf("expected duplicate to receive a distinct id")
	}
	if dup.Name != src.Name || dup.Keyword != src.Keyword || dup.Snippet != src.Snippet {
		t.Fatalf("expected duplicate to copy content fields")
	}
	if !dup.Markdown {
		t.Fatalf("expected duplicate to copy the markdown flag")
	}
	if dup.Created == src.Created || dup.Modified == src.Modified {
		t.Fatalf("expected duplicate to carry fresh timestamps")
	}
}

func TestMarkEdited(t *testing.T) {
	t.Parallel()

	c := New()
	c.Modified = "2020-01-01T00:00:00Z"

	c.MarkEdited()

	if c.ModifiedAt().Year() < time.Now().Year() {
		t.Fatalf("expected MarkEdited to refresh the modification time, got %q", c.Modified)
	}
}

func TestTimestampParsing(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			value: "2023-06-15T10:30:00Z",
			want:  time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			value: "2023-06-15",
			want:  time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "empty",
			value: "",
			want:  time.Time{},
		},
		{
			name:  "garbage",
			value: "not a date",
			want:  time.Time{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := Combo{Created: tc.value}
			if got := c.CreatedAt(); !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
