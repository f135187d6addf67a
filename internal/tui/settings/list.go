// Package settings implements the preferences screen.
package settings

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erikgeiser/promptkit/selection"

	"github.com/typefast/snip/internal/prefs"
)

const (
	itemPlaySound   = "PlaySoundOnCombo"
	itemAutoStart   = "AutoStartAtLogin"
	itemInstallPath = "InstalledApplicationPath"
	itemReset       = "Reset"
)

const (
	valueEnabled  = "enabled"
	valueDisabled = "disabled"
)

type ListItem struct {
	title       string
	description string
}

func (i ListItem) Title() string       { return i.title }
func (i ListItem) Description() string { return i.description }
func (i ListItem) FilterValue() string { return i.title }

type listKeyMap struct {
	toggleTitleBar   key.Binding
	toggleStatusBar  key.Binding
	togglePagination key.Binding
	toggleHelpMenu   key.Binding
	toggleEditItem   key.Binding
	exitInputMode    key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleTitleBar: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "toggle title"),
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
		toggleEditItem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit item"),
		),
		exitInputMode: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit input mode"),
		),
	}
}

type ListModel struct {
	list         list.Model
	keys         *listKeyMap
	prefs        *prefs.Manager
	toggleSelect *selection.Model[string]
	toggleActive bool
	toggleTitle  string
}

func boolLabel(value bool) string {
	if value {
		return valueEnabled
	}
	return valueDisabled
}

func settingsItems(p *prefs.Manager) []list.Item {
	installPath := p.InstalledApplicationPath()
	if installPath == "" {
		installPath = "(not set)"
	}

	return []list.Item{
		ListItem{title: itemPlaySound, description: boolLabel(p.PlaySoundOnCombo())},
		ListItem{title: itemAutoStart, description: boolLabel(p.AutoStartAtLogin())},
		ListItem{title: itemInstallPath, description: installPath + " (read only)"},
		ListItem{title: itemReset, description: "Restore the default preferences"},
	}
}

func newToggleSelect(title string) *selection.Model[string] {
	sel := selection.New(
		fmt.Sprintf("Please select a value for %s.", title),
		[]string{valueEnabled, valueDisabled},
	)
	sel.Filter = nil
	return selection.NewModel(sel)
}

func NewListModel(p *prefs.Manager) ListModel {
	listKeys := newListKeyMap()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedItemStyle
	delegate.Styles.SelectedDesc = selectedItemStyle

	settingsList := list.New(settingsItems(p), delegate, 0, 0)
	settingsList.Title = "Preferences"
	settingsList.Styles.Title = titleStyle
	settingsList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			listKeys.toggleTitleBar,
			listKeys.toggleStatusBar,
			listKeys.togglePagination,
			listKeys.toggleHelpMenu,
		}
	}

	return ListModel{
		list:  settingsList,
		keys:  listKeys,
		prefs: p,
	}
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		if m.toggleActive {
			if key.Matches(msg, m.keys.exitInputMode) {
				m.toggleActive = false
				return m, nil
			}

			var cmd tea.Cmd
			_, cmd = m.toggleSelect.Update(msg)
			cmds = append(cmds, cmd)

			if key.Matches(msg, m.keys.toggleEditItem) {
				c, err := m.toggleSelect.Value()
				if err != nil {
					return m, nil
				}

				m.applyToggle(m.toggleTitle, c == valueEnabled)
				m.toggleActive = false
				m.list.SetItems(settingsItems(m.prefs))
				m.list.NewStatusMessage(statusMessageStyle("Updated and Saved: " + m.toggleTitle))
				return m, nil
			}

			return m, tea.Batch(cmds...)
		}

		switch {
		case key.Matches(msg, m.keys.toggleEditItem):
			var title string

			if i, ok := m.list.SelectedItem().(ListItem); ok {
				title = i.Title()
			} else {
				return m, nil
			}

			switch title {
			case itemPlaySound, itemAutoStart:
				m.toggleTitle = title
				m.toggleSelect = newToggleSelect(title)
				m.toggleActive = true
				return m, m.toggleSelect.Init()
			case itemReset:
				m.prefs.Reset()
				m.list.SetItems(settingsItems(m.prefs))
				m.list.NewStatusMessage(statusMessageStyle("Preferences restored to defaults"))
				return m, nil
			default:
				// The install path is written by the installer only.
				return m, nil
			}

		case key.Matches(msg, m.keys.toggleTitleBar):
			v := !m.list.ShowTitle()
			m.list.SetShowTitle(v)
			m.list.SetShowFilter(v)
			m.list.SetFilteringEnabled(v)
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
		}
	}

	newListModel, cmd := m.list.Update(msg)
	m.list = newListModel
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m ListModel) applyToggle(title string, value bool) {
	switch title {
	case itemPlaySound:
		m.prefs.SetPlaySoundOnCombo(value)
	case itemAutoStart:
		m.prefs.SetAutoStartAtLogin(value)
	}
}

func (m ListModel) View() string {
	if m.toggleActive {
		return appStyle.Render(m.toggleSelect.View())
	}
	return appStyle.Render(m.list.View())
}

func Run(p *prefs.Manager) error {
	if _, err := tea.NewProgram(NewListModel(p), tea.WithAltScreen()).Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}

	return nil
}
