package combos

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typefast/snip/internal/combo"
)

func newItemDelegate(keys *delegateKeyMap, save func() tea.Cmd) list.DefaultDelegate {
	d := list.NewDefaultDelegate()

	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		var c *combo.Combo

		if i, ok := m.SelectedItem().(ComboItem); ok {
			c = i.combo
		} else {
			return nil
		}

		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.toggleEnabled):
				c.Enabled = !c.Enabled
				c.MarkEdited()
				state := "Enabled"
				if !c.Enabled {
					state = "Disabled"
				}
				return tea.Batch(
					save(),
					m.NewStatusMessage(statusStyle(state+" "+c.Keyword)),
				)
			}
		}

		return nil
	}

	d.ShortHelpFunc = func() []key.Binding {
		return []key.Binding{keys.toggleEnabled}
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{{keys.toggleEnabled}}
	}
	return d
}

type delegateKeyMap struct {
	toggleEnabled key.Binding
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		toggleEnabled: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "enable/disable"),
		),
	}
}
