package combos

import (
	"fmt"
	"sort"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typefast/snip/internal/combo"
	"github.com/typefast/snip/internal/tui/combos/submodels"
)

// selectedComboIndexes returns the source indexes of the combos the
// next operation applies to: the marked ones, or the cursor row when
// nothing is marked. Stale marks that no longer map to a live combo
// are dropped.
func (m *ComboListModel) selectedComboIndexes() []int {
	combos := m.state.Combos.List()

	var indexes []int
	for _, item := range m.list.Items() {
		i, ok := item.(ComboItem)
		if !ok || !i.marked {
			continue
		}
		if i.sourceIndex < 0 || i.sourceIndex >= combos.Len() {
			continue
		}
		indexes = append(indexes, i.sourceIndex)
	}

	if len(indexes) == 0 {
		if i, ok := m.list.SelectedItem().(ComboItem); ok {
			if i.sourceIndex >= 0 && i.sourceIndex < combos.Len() {
				indexes = append(indexes, i.sourceIndex)
			}
		}
	}

	return indexes
}

func (m *ComboListModel) toggleSelect() {
	i, ok := m.list.SelectedItem().(ComboItem)
	if !ok {
		return
	}
	if _, marked := m.selected[i.combo.ID]; marked {
		delete(m.selected, i.combo.ID)
	} else {
		m.selected[i.combo.ID] = struct{}{}
	}
	m.refreshItems()
	m.list.CursorDown()
}

func (m *ComboListModel) selectAll() {
	for _, item := range m.list.Items() {
		if i, ok := item.(ComboItem); ok {
			m.selected[i.combo.ID] = struct{}{}
		}
	}
	m.refreshItems()
}

func (m *ComboListModel) deselectAll() {
	m.selected = map[string]struct{}{}
	m.refreshItems()
}

func (m *ComboListModel) deletePrompt() string {
	count := len(m.selectedComboIndexes())
	if count == 1 {
		return "Are you sure you want to delete the selected combo?"
	}
	return fmt.Sprintf("Are you sure you want to delete the %d selected combos?", count)
}

// deleteSelected removes the chosen combos. Indexes are walked in
// descending order so each removal leaves the remaining ones valid.
func (m *ComboListModel) deleteSelected() tea.Cmd {
	indexes := m.selectedComboIndexes()
	if len(indexes) == 0 {
		return nil
	}

	sort.Sort(sort.Reverse(sort.IntSlice(indexes)))
	combos := m.state.Combos.List()
	for _, i := range indexes {
		if err := combos.Erase(i); err != nil {
			return m.list.NewStatusMessage(statusStyle(err.Error()))
		}
	}

	m.deselectAll()
	saveCmd := m.saveAndReport()
	m.refreshItems()
	m.list.ResetSelected()
	return tea.Batch(
		saveCmd,
		m.list.NewStatusMessage(statusStyle(fmt.Sprintf("Deleted %d combo(s)", len(indexes)))),
	)
}

// duplicateSelected clones a single combo and opens the form on the
// clone so it can be adjusted before it joins the list.
func (m *ComboListModel) duplicateSelected() tea.Cmd {
	indexes := m.selectedComboIndexes()
	if len(indexes) != 1 {
		return m.list.NewStatusMessage(statusStyle("Select a single combo to duplicate"))
	}

	src := m.state.Combos.List().At(indexes[0])
	if src == nil {
		return nil
	}

	m.pendingDup = combo.Duplicate(src)
	m.formModel = submodels.NewFormModel("Duplicate combo")
	m.formModel.SetCombo(m.pendingDup)
	m.duplicating = true
	return nil
}

func (m *ComboListModel) openCreateForm() {
	m.formModel = submodels.NewFormModel("Create a new combo")
	m.editIndex = -1
	m.adding = true
}

// openEditForm binds the form to a single combo. Like duplication it
// needs exactly one target, whether marked or under the cursor.
func (m *ComboListModel) openEditForm() tea.Cmd {
	indexes := m.selectedComboIndexes()
	if len(indexes) != 1 {
		return m.list.NewStatusMessage(statusStyle("Select a single combo to edit"))
	}

	c := m.state.Combos.List().At(indexes[0])
	if c == nil {
		return nil
	}

	m.formModel = submodels.NewFormModel("Edit combo")
	m.formModel.SetCombo(c)
	m.editIndex = indexes[0]
	m.editing = true
	return nil
}

func (m *ComboListModel) closeForm() {
	m.adding = false
	m.editing = false
	m.duplicating = false
	m.editIndex = -1
	m.pendingDup = nil
}

// applyForm commits the form to the list: a created combo is appended,
// an edited one is updated in place and stamped as modified; both save
// immediately. A confirmed duplicate is appended without a save, so it
// only reaches disk with the next saving operation.
func (m *ComboListModel) applyForm() tea.Cmd {
	combos := m.state.Combos.List()

	switch {
	case m.editing:
		c := combos.At(m.editIndex)
		if c == nil {
			return nil
		}
		m.formModel.Apply(c)
		c.MarkEdited()
	case m.duplicating:
		if m.pendingDup == nil {
			return nil
		}
		m.formModel.Apply(m.pendingDup)
		combos.Append(m.pendingDup)
		m.refreshItems()
		return nil
	default:
		c := combo.New()
		m.formModel.Apply(c)
		combos.Append(c)
	}

	saveCmd := m.saveAndReport()
	m.refreshItems()
	return saveCmd
}

// saveAndReport writes the combo file. On failure the error is raised
// as a modal and the in-memory change is kept, so the user can fix the
// problem and trigger another save.
func (m *ComboListModel) saveAndReport() tea.Cmd {
	if err := m.state.Combos.SaveToFile(); err != nil {
		m.errorActive = true
		m.errorMessage = err.Error()
	}
	return nil
}

// copySnippet puts the rendered snippet of the cursor combo on the
// clipboard.
func (m *ComboListModel) copySnippet() tea.Cmd {
	i, ok := m.list.SelectedItem().(ComboItem)
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(i.combo.Snippet); err != nil {
		return m.list.NewStatusMessage(statusStyle("Failed to copy snippet"))
	}
	return m.list.NewStatusMessage(statusStyle("Copied " + i.combo.Keyword))
}
