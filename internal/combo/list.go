package combo

import "fmt"

// List is the shared, ordered collection of combo records. It is only
// ever mutated from the UI event loop, so it performs no locking.
type List struct {
	combos []*Combo
}

func NewList(combos ...*Combo) *List {
	return &List{combos: combos}
}

func (l *List) Len() int {
	return len(l.combos)
}

// At returns the combo at index i, or nil when i is out of range.
func (l *List) At(i int) *Combo {
	if i < 0 || i >= len(l.combos) {
		return nil
	}
	return l.combos[i]
}

func (l *List) Append(c *Combo) {
	l.combos = append(l.combos, c)
}

// Erase removes the combo at index i. Callers removing several indexes
// must erase in descending order so the remaining indexes stay valid.
func (l *List) Erase(i int) error {
	if i < 0 || i >= len(l.combos) {
		return fmt.Errorf("combo index %d out of range [0, %d)", i, len(l.combos))
	}
	l.combos = append(l.combos[:i], l.combos[i+1:]...)
	return nil
}

// MarkEdited refreshes the modification timestamp of the combo at
// index i.
func (l *List) MarkEdited(i int) error {
	c := l.At(i)
	if c == nil {
		return fmt.Errorf("combo index %d out of range [0, %d)", i, len(l.combos))
	}
	c.MarkEdited()
	return nil
}

// Combos returns the underlying records in list order. The slice is a
// copy; the records are shared.
func (l *List) Combos() []*Combo {
	out := make([]*Combo, len(l.combos))
	copy(out, l.combos)
	return out
}

// FindByKeyword returns the first enabled combo whose keyword matches.
func (l *List) FindByKeyword(keyword string) (*Combo, bool) {
	for _, c := range l.combos {
		if c.Enabled && c.Keyword == keyword {
			return c, true
		}
	}
	return nil, false
}
