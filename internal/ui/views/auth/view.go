package auth

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "ledgerdesk/internal/modules/session/dto"
	"ledgerdesk/internal/ui/components"
	"ledgerdesk/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Login(ctx context.Context, input sessiondto.LoginInput) (sessiondto.UserOutput, error)
	Signup(ctx context.Context, input sessiondto.SignupInput) (sessiondto.UserOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// AuthenticatedMsg is emitted once login or signup succeeded.
type AuthenticatedMsg struct{ User sessiondto.UserOutput }

type resultMsg struct {
	form string
	user sessiondto.UserOutput
	err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

var roles = []string{"user", "manager", "admin"}

type Model struct {
	port    Port
	mode    Mode
	form    components.Form
	spinner spinner.Model
	busy    bool
	width   int
	height  int
}

func New(port Port, mode Mode) Model {
	var form components.Form
	if mode == ModeSignup {
		form = components.NewForm("signup", "Create an account", []components.Field{
			{Key: "email", Label: "Email", Placeholder: "you@example.com"},
			{Key: "password", Label: "Password", Secret: true},
			{Key: "confirm", Label: "Confirm", Secret: true},
			{Key: "role", Label: "Role", Options: roles},
		})
	} else {
		form = components.NewForm("login", "Sign in", []components.Field{
			{Key: "email", Label: "Email", Placeholder: "you@example.com"},
			{Key: "password", Label: "Password", Secret: true},
		})
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, mode: mode, form: form, spinner: sp}
}

// Reset clears the form and focuses its first field.
func (m *Model) Reset() tea.Cmd {
	m.busy = false
	return m.form.Reset()
}

func (m Model) Err() string { return m.form.Err() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetWidth(min(m.width-4, 64))
		return m, nil

	case components.FormSubmitMsg:
		if msg.Form != m.form.Name() || m.busy {
			return m, nil
		}
		m.busy = true
		m.form.SetError("")
		return m, tea.Batch(m.submitCmd(msg.Values), m.spinner.Tick)

	case components.FormCancelMsg:
		if msg.Form != m.form.Name() {
			return m, nil
		}
		return m, components.Navigate("/")

	case resultMsg:
		if msg.form != m.form.Name() {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.form.SetError(msg.err.Error())
			return m, nil
		}
		user := msg.user
		return m, func() tea.Msg { return AuthenticatedMsg{User: user} }

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+s":
			if m.mode == ModeLogin {
				return m, components.Navigate("/signup")
			}
			return m, components.Navigate("/login")
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	hint := "ctrl+s: create an account instead"
	if m.mode == ModeSignup {
		hint = "ctrl+s: sign in instead"
	}
	footer := theme.Muted.Render(hint)
	if m.busy {
		footer = m.spinner.View() + " Working…"
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.form.View(), "", footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) submitCmd(values map[string]string) tea.Cmd {
	form := m.form.Name()
	mode := m.mode
	port := m.port
	return func() tea.Msg {
		ctx := context.Background()
		var (
			user sessiondto.UserOutput
			err  error
		)
		if mode == ModeSignup {
			user, err = port.Signup(ctx, sessiondto.SignupInput{
				Email:    values["email"],
				Password: values["password"],
				Confirm:  values["confirm"],
				Role:     values["role"],
			})
		} else {
			user, err = port.Login(ctx, sessiondto.LoginInput{
				Email:    values["email"],
				Password: values["password"],
			})
		}
		return resultMsg{form: form, user: user, err: err}
	}
}
