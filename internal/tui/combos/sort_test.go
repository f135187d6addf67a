package combos

import (
	"testing"

	"github.com/typefast/snip/internal/combo"
)

func buildTestList() *combo.List {
	l := combo.NewList()

	addrs := []struct {
		name, keyword, snippet, modified string
	}{
		{"Work signature", "wsig", "Best regards from the office", "2023-03-01T00:00:00Z"},
		{"Address", "addr", "1 Main Street", "2023-01-01T00:00:00Z"},
		{"Personal signature", "psig", "Cheers", "2023-02-01T00:00:00Z"},
	}
	for _, a := range addrs {
		c := combo.New()
		c.Name = a.name
		c.Keyword = a.keyword
		c.Snippet = a.snippet
		c.Modified = a.modified
		l.Append(c)
	}
	return l
}

func keywordsForIndex(l *combo.List, index []int) []string {
	out := make([]string, len(index))
	for i, src := range index {
		out[i] = l.At(src).Keyword
	}
	return out
}

func TestBuildIndexSorting(t *testing.T) {
	t.Parallel()

	l := buildTestList()

	testCases := []struct {
		name  string
		field sortField
		order sortOrder
		want  []string
	}{
		{"name ascending", sortByName, ascending, []string{"addr", "psig", "wsig"}},
		{"name descending", sortByName, descending, []string{"wsig", "psig", "addr"}},
		{"keyword ascending", sortByKeyword, ascending, []string{"addr", "psig", "wsig"}},
		{"modified descending", sortByModifiedAt, descending, []string{"wsig", "psig", "addr"}},
		{"modified ascending", sortByModifiedAt, ascending, []string{"addr", "psig", "wsig"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			index := buildIndex(l, "", tc.field, tc.order)
			got := keywordsForIndex(l, index)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d rows, got %d", len(tc.want), len(got))
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("expected order %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestBuildIndexFiltering(t *testing.T) {
	t.Parallel()

	l := buildTestList()

	testCases := []struct {
		name   string
		filter string
		want   int
	}{
		{"empty filter keeps all", "", 3},
		{"matches keyword", "addr", 1},
		{"matches name case insensitive", "SIGNATURE", 2},
		{"matches snippet", "main street", 1},
		{"whitespace is trimmed", "  addr  ", 1},
		{"no match", "zzz", 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			index := buildIndex(l, tc.filter, sortByName, ascending)
			if len(index) != tc.want {
				t.Fatalf("expected %d rows for filter %q, got %d", tc.want, tc.filter, len(index))
			}
		})
	}
}

func TestBuildIndexMapsToSource(t *testing.T) {
	t.Parallel()

	l := buildTestList()

	index := buildIndex(l, "signature", sortByName, ascending)
	if len(index) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(index))
	}
	// Filtered rows must still point at their position in the full
	// list, not at their display position.
	if l.At(index[0]).Keyword != "psig" || l.At(index[1]).Keyword != "wsig" {
		t.Fatalf("unexpected source mapping: %v", keywordsForIndex(l, index))
	}
}
