package submodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typefast/snip/internal/combo"
	"github.com/typefast/snip/utils"
)

const (
	name = iota
	keyword
	snippet
	markdown
	submit
)

const (
	hotPink  = lipgloss.Color("#0AF")
	darkGray = lipgloss.Color("#767676")
)

var (
	formInputStyle = lipgloss.NewStyle().Foreground(hotPink)
	formTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Background(lipgloss.Color("transparent")).
			Padding(1, 0)

	continueStyle = lipgloss.NewStyle().Foreground(darkGray)
	formErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F55"))
)

// FormModel is the combo create/edit form. The parent model drives it
// as an overlay: it feeds key messages in and inspects Submitted once
// the user confirms.
type FormModel struct {
	Title     string
	Inputs    []textinput.Model
	Snippet   textarea.Model
	Markdown  bool
	Focused   int
	btn       SubmitButton
	submitted bool
	errMsg    string
}

func NewFormModel(title string) FormModel {
	inputs := make([]textinput.Model, 2)
	inputs[name] = textinput.New()
	inputs[name].Placeholder = "Name"
	inputs[name].Focus()
	inputs[name].CharLimit = 64
	inputs[name].Width = 50
	inputs[name].Prompt = ""

	inputs[keyword] = textinput.New()
	inputs[keyword].Placeholder = "Keyword"
	inputs[keyword].CharLimit = 32
	inputs[keyword].Width = 50
	inputs[keyword].Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Snippet"
	ta.SetWidth(50)
	ta.SetHeight(8)

	return FormModel{
		Title:   title,
		Inputs:  inputs,
		Snippet: ta,
		Focused: 0,
		btn:     NewSubmitButton(),
	}
}

// SetCombo prefills the form from an existing combo for editing.
func (m *FormModel) SetCombo(c *combo.Combo) {
	m.Inputs[name].SetValue(c.Name)
	m.Inputs[keyword].SetValue(c.Keyword)
	m.Snippet.SetValue(c.Snippet)
	m.Markdown = c.Markdown
	m.submitted = false
	m.errMsg = ""
}

// Reset clears the form for creating a new combo.
func (m *FormModel) Reset() {
	m.Inputs[name].SetValue("")
	m.Inputs[keyword].SetValue("")
	m.Snippet.SetValue("")
	m.Markdown = false
	m.Focused = 0
	m.submitted = false
	m.errMsg = ""
	m.refocus()
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.btn.Focused() {
				m.handleSubmit()
				return m, nil
			}
			if m.Focused != snippet {
				m.nextField()
				m.refocus()
				return m, nil
			}
		case tea.KeyShiftTab, tea.KeyCtrlP:
			m.prevField()
			m.refocus()
			return m, nil
		case tea.KeyTab, tea.KeyCtrlN:
			m.nextField()
			m.refocus()
			return m, nil
		case tea.KeySpace:
			if m.Focused == markdown {
				m.Markdown = !m.Markdown
				return m, nil
			}
		}
	}

	var cmds []tea.Cmd
	for i := range m.Inputs {
		var cmd tea.Cmd
		m.Inputs[i], cmd = m.Inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.Snippet, cmd = m.Snippet.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Submitted reports whether the user confirmed a valid form since the
// last Reset or SetCombo.
func (m FormModel) Submitted() bool {
	return m.submitted
}

// Apply copies the form values onto a combo record.
func (m FormModel) Apply(c *combo.Combo) {
	c.Name = m.Inputs[name].Value()
	c.Keyword = m.Inputs[keyword].Value()
	c.Snippet = m.Snippet.Value()
	c.Markdown = m.Markdown
}

func (m *FormModel) handleSubmit() {
	if err := utils.ValidateKeyword(m.Inputs[keyword].Value()); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.submitted = true
}

func (m *FormModel) nextField() {
	m.Focused = (m.Focused + 1) % (submit + 1)
}

func (m *FormModel) prevField() {
	m.Focused--
	if m.Focused < 0 {
		m.Focused = submit
	}
}

func (m *FormModel) refocus() {
	for i := range m.Inputs {
		m.Inputs[i].Blur()
	}
	m.Snippet.Blur()
	m.btn.Blur()

	switch m.Focused {
	case name, keyword:
		m.Inputs[m.Focused].Focus()
	case snippet:
		m.Snippet.Focus()
	case submit:
		m.btn.Focus()
	}
}

func (m FormModel) View() string {
	var btnView string
	if m.btn.Focused() {
		btnView = formInputStyle.Render(m.btn.View())
	} else {
		btnView = continueStyle.Render(m.btn.View())
	}

	markdownBox := "[ ]"
	if m.Markdown {
		markdownBox = "[x]"
	}
	markdownView := continueStyle.Render(markdownBox + " Markdown snippet")
	if m.Focused == markdown {
		markdownView = formInputStyle.Render(markdownBox + " Markdown snippet (space to toggle)")
	}

	errView := ""
	if m.errMsg != "" {
		errView = formErrStyle.Render(m.errMsg)
	}

	return fmt.Sprintf(
		`
%s

%s
%s

%s
%s

%s
%s

%s

%s
%s
`,
		formTitleStyle.Render(m.Title),
		formInputStyle.Width(50).Render("Name"),
		m.Inputs[name].View(),
		formInputStyle.Width(50).Render("Keyword"),
		m.Inputs[keyword].View(),
		formInputStyle.Width(50).Render("Snippet"),
		m.Snippet.View(),
		markdownView,
		btnView,
		errView,
	) + "\n"
}
