package alldata

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ledgerdesk/internal/ui/theme"
	"ledgerdesk/internal/ui/views/records"
)

// Model shows invoices and purchases side by side. tab moves focus between
// the two lists; keys go to the focused one.
type Model struct {
	panes  [2]records.Model
	focus  int
	width  int
	height int
}

func New(invoices, purchases records.Source) Model {
	return Model{panes: [2]records.Model{records.New(invoices), records.New(purchases)}}
}

func (m *Model) SetPrivileged(ok bool) {
	m.panes[0].SetPrivileged(ok)
	m.panes[1].SetPrivileged(ok)
}

func (m *Model) Load() tea.Cmd {
	return tea.Batch(m.panes[0].Load(), m.panes[1].Load())
}

func (m Model) Capturing() bool { return m.panes[m.focus].Capturing() }

func (m Model) Focus() int { return m.focus }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		half := tea.WindowSizeMsg{Width: m.width/2 - 4, Height: m.height - 2}
		var cmds []tea.Cmd
		for i := range m.panes {
			var cmd tea.Cmd
			m.panes[i], cmd = m.panes[i].Update(half)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == "tab" && !m.Capturing() {
			m.focus = 1 - m.focus
			return m, nil
		}
		var cmd tea.Cmd
		m.panes[m.focus], cmd = m.panes[m.focus].Update(msg)
		return m, cmd
	}

	// Loaded, saved and form messages carry their source name, so both panes
	// can see them and ignore the ones that are not theirs.
	var cmds []tea.Cmd
	for i := range m.panes {
		var cmd tea.Cmd
		m.panes[i], cmd = m.panes[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.panes[m.focus].Editing() {
		return m.panes[m.focus].View()
	}
	views := [2]string{}
	for i := range m.panes {
		style := theme.Pane
		if i == m.focus {
			style = theme.PaneActive
		}
		views[i] = style.Width(m.width/2 - 2).Render(m.panes[i].View())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, views[0], views[1]),
		theme.Muted.Render("tab: switch list"),
	)
}
