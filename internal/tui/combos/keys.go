package combos

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	toggleTitleBar   key.Binding
	toggleStatusBar  key.Binding
	togglePagination key.Binding
	toggleHelpMenu   key.Binding
	editCombo        key.Binding
	create           key.Binding
	duplicate        key.Binding
	deleteCombo      key.Binding
	toggleSelect     key.Binding
	selectAll        key.Binding
	deselectAll      key.Binding
	search           key.Binding
	copy             key.Binding
	submitAltView    key.Binding
	exitAltView      key.Binding
	sortByName       key.Binding
	sortByKeyword    key.Binding
	sortByModifiedAt key.Binding
	sortAscending    key.Binding
	sortDescending   key.Binding
	quit             key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleTitleBar: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "toggle title"),
		),
		toggleStatusBar: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "toggle status"),
		),
		togglePagination: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "toggle pagination"),
		),
		toggleHelpMenu: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		editCombo: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "edit"),
		),
		create: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "create"),
		),
		duplicate: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "duplicate"),
		),
		deleteCombo: key.NewBinding(
			key.WithKeys("X", "delete"),
			key.WithHelp("X", "delete"),
		),
		toggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		selectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		deselectAll: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "deselect all"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		copy: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy snippet"),
		),
		submitAltView: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit (alt view)"),
		),
		exitAltView: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit alt view"),
		),
		sortByName: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "sort by name"),
		),
		sortByKeyword: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "sort by keyword"),
		),
		sortByModifiedAt: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "sort by modified"),
		),
		sortAscending: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "ascending sort"),
		),
		sortDescending: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("f6", "descending sort"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (m listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.toggleTitleBar,
		m.toggleStatusBar,
		m.togglePagination,
		m.toggleHelpMenu,
		m.editCombo,
		m.create,
		m.duplicate,
		m.deleteCombo,
		m.toggleSelect,
		m.selectAll,
		m.deselectAll,
		m.search,
		m.copy,
		m.sortByName,
		m.sortByKeyword,
		m.sortByModifiedAt,
		m.sortAscending,
		m.sortDescending,
	}
}
