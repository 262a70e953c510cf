package overview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashdto "ledgerdesk/internal/modules/dashboard/dto"
	"ledgerdesk/internal/ui/theme"
)

type Port interface {
	Overview(ctx context.Context) (dashdto.OverviewOutput, error)
}

type LoadedMsg struct {
	Overview dashdto.OverviewOutput
	Err      error
}

// recentLimit caps the records listed under each section.
const recentLimit = 5

type Model struct {
	port     Port
	greeting string
	data     dashdto.OverviewOutput
	err      error
	spinner  spinner.Model
	loading  bool
	width    int
	height   int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp}
}

// SetGreeting sets the welcome line, usually the signed-in email.
func (m *Model) SetGreeting(s string) { m.greeting = s }

// Load starts a fetch of both sections.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.loading = false
		m.data = msg.Overview
		m.err = msg.Err

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading {
			return m, m.Load()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading dashboard…")
	}

	header := theme.Title.Render("Dashboard")
	if m.greeting != "" {
		header += theme.Muted.Render("  welcome, " + m.greeting)
	}
	if m.err != nil {
		header += "\n" + theme.Error.Render(m.err.Error())
	}

	paneW := max(m.width/2-2, 24)
	invoices := section("Invoices", "2", m.data.Invoices, paneW)
	purchases := section("Purchases", "3", m.data.Purchases, paneW)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, invoices, purchases)

	footer := theme.Muted.Render("2: invoices  3: purchases  4: all data  r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", panes, "", footer)
}

func section(title, shortcut string, s dashdto.SectionOutput, width int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + theme.Muted.Render("  ["+shortcut+"]") + "\n\n")
	if s.Error != "" {
		sb.WriteString(theme.Error.Render(s.Error) + "\n")
		return theme.Pane.Width(width).Render(sb.String())
	}
	sb.WriteString(fmt.Sprintf("%s %d   %s %.2f\n", theme.Muted.Render("count"), len(s.Records),
		theme.Muted.Render("total"), s.Total))
	for _, c := range s.Counts {
		sb.WriteString(fmt.Sprintf("  %s %d\n", theme.Status(c.Status), c.Count))
	}
	if len(s.Records) == 0 {
		sb.WriteString("\n" + theme.Muted.Render("Nothing here yet"))
		return theme.Pane.Width(width).Render(sb.String())
	}
	sb.WriteString("\n")
	for i, r := range s.Records {
		if i == recentLimit {
			sb.WriteString(theme.Muted.Render(fmt.Sprintf("… %d more", len(s.Records)-recentLimit)) + "\n")
			break
		}
		sb.WriteString(fmt.Sprintf("%s  %s  %.2f\n", r.Label, theme.Muted.Render(r.Date), r.Amount))
	}
	return theme.Pane.Width(width).Render(sb.String())
}

func (m Model) loadCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.Overview(context.Background())
		return LoadedMsg{Overview: out, Err: err}
	}
}
