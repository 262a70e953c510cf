package components

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg asks the router to move to Path. The router applies the
// session guard before switching screens.
type NavigateMsg struct{ Path string }

func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}
