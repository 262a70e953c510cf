package splash

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"

	"ledgerdesk/internal/ui/components"
	"ledgerdesk/internal/ui/theme"
)

// Model is the landing screen shown at "/".
type Model struct {
	banner string
	width  int
	height int
}

func New() Model {
	return Model{banner: figure.NewFigure("ledgerdesk", "", true).String()}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "l", "enter":
			return m, components.Navigate("/login")
		case "s":
			return m, components.Navigate("/signup")
		}
	}
	return m, nil
}

func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Hot.Render(m.banner),
		theme.Title.Render("Invoices and purchases, from the terminal"),
		"",
		theme.Muted.Render("l: login   s: sign up   q: quit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
