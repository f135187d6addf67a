// Package combos implements the combo management screen: a filterable,
// sortable list of combos with create, edit, duplicate and delete
// operations backed by the combo file.
package combos

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typefast/snip/internal/cache"
	"github.com/typefast/snip/internal/combo"
	"github.com/typefast/snip/internal/state"
	"github.com/typefast/snip/internal/tui/combos/submodels"
	"github.com/typefast/snip/utils"
)

var previewCacheSize = 128

type ComboListModel struct {
	list         list.Model
	cache        *cache.PreviewCache
	keys         *listKeyMap
	delegateKeys *delegateKeyMap
	state        *state.State
	preview      string
	formModel    submodels.FormModel
	searchModel  submodels.InputModel
	width        int
	height       int
	adding       bool
	editing      bool
	duplicating  bool
	searching    bool
	confirming   bool
	errorActive  bool
	errorMessage string
	filter       string
	editIndex    int
	pendingDup   *combo.Combo
	selected     map[string]struct{}
	index        []int
	sortField    sortField
	sortOrder    sortOrder
}

func NewComboListModel(s *state.State) *ComboListModel {
	dkeys := newDelegateKeyMap()
	lkeys := newListKeyMap()

	m := &ComboListModel{
		state:        s,
		cache:        cache.NewPreviewCache(previewCacheSize),
		keys:         lkeys,
		delegateKeys: dkeys,
		formModel:    submodels.NewFormModel("Create a new combo"),
		searchModel:  submodels.NewInputModel(),
		selected:     map[string]struct{}{},
		editIndex:    -1,
		sortField:    sortByModifiedAt,
		sortOrder:    descending,
	}

	delegate := newItemDelegate(dkeys, m.saveAndReport)

	l := list.New(nil, delegate, 0, 0)
	l.Title = m.titleForList()
	l.Styles.Title = titleStyle
	l.SetFilteringEnabled(false)

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			lkeys.editCombo,
			lkeys.create,
			lkeys.search,
		}
	}
	l.AdditionalFullHelpKeys = lkeys.fullHelp

	m.list = l
	m.refreshItems()
	return m
}

func (m ComboListModel) Init() tea.Cmd {
	return nil
}

func (m *ComboListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var retCmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		switch {
		case m.errorActive:
			return m.handleErrorUpdate(msg)
		case m.confirming:
			return m.handleConfirmUpdate(msg)
		case m.adding || m.editing || m.duplicating:
			return m.handleFormUpdate(msg)
		case m.searching:
			return m.handleSearchUpdate(msg)
		default:
			_, retCmd = m.handleDefaultUpdate(msg)
		}
	}

	nl, cmd := m.list.Update(msg)
	m.list = nl
	cmds = append(cmds, cmd, retCmd)

	m.handlePreview()
	return m, tea.Batch(cmds...)
}

func (m *ComboListModel) handleErrorUpdate(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the error. The failed mutation stays in the
	// list so the user can retry the save.
	m.errorActive = false
	m.errorMessage = ""
	return m, nil
}

func (m *ComboListModel) handleConfirmUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.confirming = false
		return m, m.deleteSelected()
	case "n", "esc":
		m.confirming = false
	}
	return m, nil
}

func (m *ComboListModel) handleFormUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitAltView) {
		m.closeForm()
		return m, nil
	}

	var cmd tea.Cmd
	m.formModel, cmd = m.formModel.Update(msg)

	if m.formModel.Submitted() {
		applyCmd := m.applyForm()
		m.closeForm()
		return m, applyCmd
	}

	return m, cmd
}

func (m *ComboListModel) handleSearchUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitAltView) {
		m.searching = false
		m.filter = ""
		m.searchModel.Input.SetValue("")
		m.refreshItems()
		return m, nil
	}

	if key.Matches(msg, m.keys.submitAltView) {
		m.searching = false
		return m, nil
	}

	var cmd tea.Cmd
	m.searchModel, cmd = m.searchModel.Update(msg)
	m.filter = m.searchModel.Input.Value()
	m.refreshItems()
	return m, cmd
}

func (m *ComboListModel) handleDefaultUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.editCombo):
		return m, m.openEditForm()

	case key.Matches(msg, m.keys.create):
		m.openCreateForm()
		return m, nil

	case key.Matches(msg, m.keys.duplicate):
		return m, m.duplicateSelected()

	case key.Matches(msg, m.keys.deleteCombo):
		if len(m.selectedComboIndexes()) > 0 {
			m.confirming = true
		}
		return m, nil

	case key.Matches(msg, m.keys.toggleSelect):
		m.toggleSelect()
		return m, nil

	case key.Matches(msg, m.keys.selectAll):
		m.selectAll()
		return m, nil

	case key.Matches(msg, m.keys.deselectAll):
		m.deselectAll()
		return m, nil

	case key.Matches(msg, m.keys.search):
		m.searching = true
		m.searchModel.Input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.copy):
		return m, m.copySnippet()

	case key.Matches(msg, m.keys.toggleTitleBar):
		v := !m.list.ShowTitle()
		m.list.SetShowTitle(v)
		return m, nil

	case key.Matches(msg, m.keys.toggleStatusBar):
		m.list.SetShowStatusBar(!m.list.ShowStatusBar())
		return m, nil

	case key.Matches(msg, m.keys.togglePagination):
		m.list.SetShowPagination(!m.list.ShowPagination())
		return m, nil

	case key.Matches(msg, m.keys.toggleHelpMenu):
		m.list.SetShowHelp(!m.list.ShowHelp())
		return m, nil

	case key.Matches(msg, m.keys.sortByName):
		m.sortField = sortByName
		m.refreshItems()
		return m, nil

	case key.Matches(msg, m.keys.sortByKeyword):
		m.sortField = sortByKeyword
		m.refreshItems()
		return m, nil

	case key.Matches(msg, m.keys.sortByModifiedAt):
		m.sortField = sortByModifiedAt
		m.refreshItems()
		return m, nil

	case key.Matches(msg, m.keys.sortAscending):
		m.sortOrder = ascending
		m.refreshItems()
		return m, nil

	case key.Matches(msg, m.keys.sortDescending):
		m.sortOrder = descending
		m.refreshItems()
		return m, nil

	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *ComboListModel) View() string {
	listView := listStyle.Width(m.width / 2).Render(m.list.View())

	if m.errorActive {
		pane := textPromptStyle.Render(
			lipgloss.NewStyle().
				Height(m.list.Height()).
				MaxHeight(m.list.Height()).
				Padding(0, 2).
				Render(fmt.Sprintf(
					"%s\n\n%s\n\n%s",
					errorTitleStyle.Render("Error"),
					m.errorMessage,
					helpStyle.Render("press any key to continue"),
				)),
		)
		return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, listView, pane))
	}

	if m.confirming {
		pane := textPromptStyle.Render(
			lipgloss.NewStyle().
				Height(m.list.Height()).
				MaxHeight(m.list.Height()).
				Padding(0, 2).
				Render(fmt.Sprintf(
					"%s\n\n%s\n\n%s",
					titleStyle.Render("Delete combos"),
					m.deletePrompt(),
					helpStyle.Render("y: delete  n: cancel"),
				)),
		)
		return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, listView, pane))
	}

	if m.adding || m.editing || m.duplicating {
		modelStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).Padding(0, 1)
		return appStyle.Render(modelStyle.Render(m.formModel.View()))
	}

	if m.searching {
		pane := textPromptStyle.Render(
			lipgloss.NewStyle().
				Height(m.list.Height()).
				MaxHeight(m.list.Height()).
				Padding(0, 2).
				Render(fmt.Sprintf(
					"%s\n\n%s",
					titleStyle.Render("Search combos"),
					m.searchModel.View(),
				)),
		)
		return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, listView, pane))
	}

	preview := previewStyle.Render(
		lipgloss.NewStyle().
			Height(m.list.Height()).
			MaxHeight(m.list.Height()).
			MaxWidth(800).
			Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), m.preview)),
	)

	return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, listView, preview))
}

func Run(s *state.State) error {
	m := NewComboListModel(s)

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		} else {
			log.Fatalf("Error running program: %v", err)
		}
	}

	return nil
}

func (m *ComboListModel) handlePreview() {
	i, ok := m.list.SelectedItem().(ComboItem)
	if !ok {
		m.preview = ""
		return
	}

	w := m.width / 2
	if !i.combo.Markdown {
		m.preview = i.combo.Snippet
		return
	}

	k := cache.Key(i.combo.ID, i.combo.Modified, w)
	if p, ok := m.cache.Get(k); ok {
		m.preview = p
		return
	}

	r := utils.RenderMarkdownPreview(i.combo.Snippet, w)
	m.cache.Put(k, r)
	m.preview = r
}

func (m *ComboListModel) titleForList() string {
	fields := map[sortField]string{
		sortByName:       "name",
		sortByKeyword:    "keyword",
		sortByModifiedAt: "modified",
	}
	orders := map[sortOrder]string{
		ascending:  "asc",
		descending: "desc",
	}
	title := fmt.Sprintf("Combos (%s, %s)", fields[m.sortField], orders[m.sortOrder])
	if strings.TrimSpace(m.filter) != "" {
		title += fmt.Sprintf(" /%s", strings.TrimSpace(m.filter))
	}
	return title
}

// refreshItems rebuilds the visible rows from the source list, the
// search filter and the sort settings. Marks held on combos that are
// no longer visible are kept so clearing the search restores them.
func (m *ComboListModel) refreshItems() tea.Cmd {
	combos := m.state.Combos.List()
	m.index = buildIndex(combos, m.filter, m.sortField, m.sortOrder)

	items := make([]list.Item, len(m.index))
	for row, src := range m.index {
		c := combos.At(src)
		_, marked := m.selected[c.ID]
		items[row] = ComboItem{combo: c, sourceIndex: src, marked: marked}
	}

	m.list.Title = m.titleForList()
	cmd := m.list.SetItems(items)
	m.handlePreview()
	return cmd
}
