package combos

import (
	"sort"
	"strings"

	"github.com/typefast/snip/internal/combo"
)

type sortField int

const (
	sortByName sortField = iota
	sortByKeyword
	sortByModifiedAt
)

type sortOrder int

const (
	ascending sortOrder = iota
	descending
)

// buildIndex computes the display order of the combo list: the returned
// slice maps each visible row to its index in the source list, after
// applying the search filter and the sort settings.
func buildIndex(l *combo.List, filter string, field sortField, order sortOrder) []int {
	index := make([]int, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		if matchesFilter(l.At(i), filter) {
			index = append(index, i)
		}
	}

	sort.SliceStable(index, func(a, b int) bool {
		ci, cj := l.At(index[a]), l.At(index[b])
		switch field {
		case sortByName:
			iName := nameForSort(ci)
			jName := nameForSort(cj)
			if order == ascending {
				return strings.Compare(iName, jName) < 0
			}
			return strings.Compare(iName, jName) > 0
		case sortByKeyword:
			if order == ascending {
				return strings.Compare(ci.Keyword, cj.Keyword) < 0
			}
			return strings.Compare(ci.Keyword, cj.Keyword) > 0
		case sortByModifiedAt:
			iTime := ci.ModifiedAt()
			jTime := cj.ModifiedAt()
			if order == ascending {
				return iTime.Before(jTime)
			}
			return iTime.After(jTime)
		}
		return false
	})

	return index
}

// matchesFilter reports whether a combo matches the search text. The
// search is a case insensitive substring match over the keyword, the
// name and the snippet; surrounding whitespace in the search text is
// ignored.
func matchesFilter(c *combo.Combo, filter string) bool {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Keyword), filter) ||
		strings.Contains(strings.ToLower(c.Name), filter) ||
		strings.Contains(strings.ToLower(c.Snippet), filter)
}

func nameForSort(c *combo.Combo) string {
	if c.Name == "" {
		return c.Keyword
	}
	return c.Name
}
