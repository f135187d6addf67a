package combos

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/typefast/snip/internal/combo"
	"github.com/typefast/snip/internal/constants"
	"github.com/typefast/snip/internal/state"
)

func newTestModel(t *testing.T, keywords ...string) *ComboListModel {
	t.Helper()

	s, err := state.NewStateFromHome(t.TempDir())
	if err != nil {
		t.Fatalf("NewStateFromHome returned error: %v", err)
	}

	for _, kw := range keywords {
		c := combo.New()
		c.Keyword = kw
		c.Name = kw
		c.Snippet = "snippet for " + kw
		s.Combos.List().Append(c)
	}

	m := NewComboListModel(s)
	m.refreshItems()
	return m
}

func markSourceIndexes(m *ComboListModel, indexes ...int) {
	combos := m.state.Combos.List()
	for _, i := range indexes {
		m.selected[combos.At(i).ID] = struct{}{}
	}
	m.refreshItems()
}

func TestDeleteSelectedRemovesInDescendingOrder(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a", "b", "c", "d", "e")
	markSourceIndexes(m, 2, 0, 3)

	m.deleteSelected()

	combos := m.state.Combos.List()
	if combos.Len() != 2 {
		t.Fatalf("expected 2 combos to remain, got %d", combos.Len())
	}
	if combos.At(0).Keyword != "b" || combos.At(1).Keyword != "e" {
		t.Fatalf("expected combos b and e to remain, got %s and %s",
			combos.At(0).Keyword, combos.At(1).Keyword)
	}
	if m.errorActive {
		t.Fatalf("unexpected save error: %s", m.errorMessage)
	}

	path := filepath.Join(m.state.Home, constants.ConfigDir, constants.ComboFile)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected combo file to be written: %v", err)
	}
}

func TestDeleteFallsBackToCursorRow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a", "b", "c")

	// Nothing marked, cursor on the first row.
	m.deleteSelected()

	if got := m.state.Combos.List().Len(); got != 2 {
		t.Fatalf("expected cursor row to be deleted, have %d combos", got)
	}
}

func TestDuplicateAppendsWithoutSaving(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a", "b")
	markSourceIndexes(m, 0)

	m.duplicateSelected()
	if !m.duplicating {
		t.Fatalf("expected the duplicate form to open")
	}
	m.applyForm()
	m.closeForm()

	combos := m.state.Combos.List()
	if combos.Len() != 3 {
		t.Fatalf("expected 3 combos after duplication, got %d", combos.Len())
	}

	dup := combos.At(2)
	src := combos.At(0)
	if dup.Keyword != src.Keyword || dup.Snippet != src.Snippet {
		t.Fatalf("expected duplicate to copy content")
	}
	if dup.ID == src.ID {
		t.Fatalf("expected duplicate to have a distinct id")
	}

	// The duplicate only reaches disk with the next saving operation.
	path := filepath.Join(m.state.Home, constants.ConfigDir, constants.ComboFile)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no combo file write after duplication")
	}
}

func TestDuplicateRequiresSingleSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a", "b", "c")
	markSourceIndexes(m, 0, 2)

	m.duplicateSelected()

	if m.duplicating {
		t.Fatalf("expected no duplicate form with 2 marks")
	}
	if got := m.state.Combos.List().Len(); got != 3 {
		t.Fatalf("expected no duplication with 2 marks, have %d combos", got)
	}
}

func TestEditRequiresSingleSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a", "b", "c")
	markSourceIndexes(m, 0, 2)

	m.openEditForm()

	if m.editing {
		t.Fatalf("expected no edit form with 2 marks")
	}
	if m.editIndex != -1 {
		t.Fatalf("expected no edit target, got index %d", m.editIndex)
	}
	for i, kw := range []string{"a", "b", "c"} {
		if got := m.state.Combos.List().At(i).Keyword; got != kw {
			t.Fatalf("expected combo %d to stay %q, got %q", i, kw, got)
		}
	}
}

func TestEditOpensOnMarkedCombo(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a", "b", "c")
	markSourceIndexes(m, 1)

	m.openEditForm()

	if !m.editing {
		t.Fatalf("expected edit form to open on a single mark")
	}
	if m.editIndex != 1 {
		t.Fatalf("expected the marked combo to be edited, got index %d", m.editIndex)
	}
}

func TestEditCancelLeavesComboUnchanged(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a")
	combos := m.state.Combos.List()
	combos.At(0).Modified = "2020-01-01T00:00:00Z"

	m.openEditForm()
	if !m.editing {
		t.Fatalf("expected edit form to open")
	}
	m.formModel.Inputs[1].SetValue("renamed")

	m.handleFormUpdate(tea.KeyMsg{Type: tea.KeyEsc})

	if m.editing {
		t.Fatalf("expected cancel to close the edit form")
	}
	c := combos.At(0)
	if c.Keyword != "a" {
		t.Fatalf("expected cancel to leave the keyword, got %q", c.Keyword)
	}
	if c.Modified != "2020-01-01T00:00:00Z" {
		t.Fatalf("expected cancel to leave the modification timestamp")
	}

	path := filepath.Join(m.state.Home, constants.ConfigDir, constants.ComboFile)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no combo file write after cancel")
	}
}

func TestApplyFormEditMarksEditedAndSaves(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a")
	combos := m.state.Combos.List()
	combos.At(0).Modified = "2020-01-01T00:00:00Z"

	m.openEditForm()
	if !m.editing {
		t.Fatalf("expected edit form to open")
	}

	m.formModel.Inputs[1].SetValue("renamed")
	m.applyForm()

	c := combos.At(0)
	if c.Keyword != "renamed" {
		t.Fatalf("expected keyword to be updated, got %q", c.Keyword)
	}
	if c.Modified == "2020-01-01T00:00:00Z" {
		t.Fatalf("expected modification timestamp to be refreshed")
	}

	path := filepath.Join(m.state.Home, constants.ConfigDir, constants.ComboFile)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected combo file to be written: %v", err)
	}
}

func TestApplyFormCreateAppends(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.openCreateForm()

	m.formModel.Inputs[0].SetValue("Greeting")
	m.formModel.Inputs[1].SetValue("hi")
	m.formModel.Snippet.SetValue("Hello there")
	m.applyForm()

	combos := m.state.Combos.List()
	if combos.Len() != 1 {
		t.Fatalf("expected 1 combo after create, got %d", combos.Len())
	}
	c := combos.At(0)
	if c.Keyword != "hi" || c.Name != "Greeting" || c.Snippet != "Hello there" {
		t.Fatalf("unexpected combo after create: %+v", c)
	}
}

func TestSaveFailureRaisesErrorAndKeepsChange(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a", "b")

	// Block the save by occupying the combo file path with a directory.
	path := filepath.Join(m.state.Home, constants.ConfigDir, constants.ComboFile)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to block combo file path: %v", err)
	}

	markSourceIndexes(m, 0)
	m.deleteSelected()

	if !m.errorActive {
		t.Fatalf("expected the failed save to raise the error modal")
	}
	if m.errorMessage == "" {
		t.Fatalf("expected a human readable error message")
	}
	// The deletion stays applied in memory despite the failed write.
	if got := m.state.Combos.List().Len(); got != 1 {
		t.Fatalf("expected in-memory deletion to be kept, have %d combos", got)
	}
}

func TestSelectionMarksFollowFilter(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "alpha", "beta", "gamma")
	markSourceIndexes(m, 1)

	m.filter = "gam"
	m.refreshItems()

	// The mark on beta is out of view; only gamma is visible and the
	// cursor fallback must not resurrect hidden marks.
	indexes := m.selectedComboIndexes()
	if len(indexes) != 1 {
		t.Fatalf("expected a single target, got %v", indexes)
	}
	if m.state.Combos.List().At(indexes[0]).Keyword != "gamma" {
		t.Fatalf("expected cursor fallback to pick the visible combo")
	}

	m.filter = ""
	m.refreshItems()

	indexes = m.selectedComboIndexes()
	if len(indexes) != 1 || m.state.Combos.List().At(indexes[0]).Keyword != "beta" {
		t.Fatalf("expected the mark on beta to survive the filter round trip, got %v", indexes)
	}
}

func TestToggleSelect(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a", "b")

	m.toggleSelect()
	if len(m.selected) != 1 {
		t.Fatalf("expected one marked combo, got %d", len(m.selected))
	}

	m.list.ResetSelected()
	m.toggleSelect()
	if len(m.selected) != 0 {
		t.Fatalf("expected the mark to be removed, got %d", len(m.selected))
	}
}

func TestSelectAllAndDeselectAll(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "a", "b", "c")

	m.selectAll()
	if len(m.selected) != 3 {
		t.Fatalf("expected all combos marked, got %d", len(m.selected))
	}

	m.deselectAll()
	if len(m.selected) != 0 {
		t.Fatalf("expected no marks after deselect all, got %d", len(m.selected))
	}
}
