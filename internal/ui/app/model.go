package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	invoicedto "ledgerdesk/internal/modules/invoice/dto"
	purchasedto "ledgerdesk/internal/modules/purchase/dto"
	sessiondto "ledgerdesk/internal/modules/session/dto"
	"ledgerdesk/internal/ui/components"
	"ledgerdesk/internal/ui/theme"
	alldataview "ledgerdesk/internal/ui/views/alldata"
	authview "ledgerdesk/internal/ui/views/auth"
	overviewview "ledgerdesk/internal/ui/views/overview"
	recordsview "ledgerdesk/internal/ui/views/records"
	splashview "ledgerdesk/internal/ui/views/splash"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type SessionPort interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, input sessiondto.LoginInput) (sessiondto.UserOutput, error)
	Signup(ctx context.Context, input sessiondto.SignupInput) (sessiondto.UserOutput, error)
	Logout(ctx context.Context) error
	State(ctx context.Context) sessiondto.StateOutput
	ClearError(ctx context.Context)
	Route(ctx context.Context, path string) sessiondto.RouteDecision
}

type InvoicePort interface {
	List(ctx context.Context) ([]invoicedto.InvoiceOutput, error)
	Create(ctx context.Context, input invoicedto.DraftInput) (invoicedto.InvoiceOutput, error)
	Update(ctx context.Context, id string, input invoicedto.DraftInput) (invoicedto.InvoiceOutput, error)
	Delete(ctx context.Context, id string) error
	Statuses() []string
}

type PurchasePort interface {
	List(ctx context.Context) ([]purchasedto.PurchaseOutput, error)
	Create(ctx context.Context, input purchasedto.DraftInput) (purchasedto.PurchaseOutput, error)
	Update(ctx context.Context, id string, input purchasedto.DraftInput) (purchasedto.PurchaseOutput, error)
	Delete(ctx context.Context, id string) error
	Statuses() []string
}

// Deps are the use cases the TUI drives.
type Deps struct {
	Session   SessionPort
	Invoices  InvoicePort
	Purchases PurchasePort
	Dashboard overviewview.Port
}

// ─── routes ──────────────────────────────────────────────────────────────────

const (
	routeSplash    = "/"
	routeLogin     = "/login"
	routeSignup    = "/signup"
	routeDashboard = "/dashboard"
	routeInvoices  = "/dashboard/invoices"
	routePurchases = "/dashboard/purchases"
	routeAllData   = "/dashboard/all-data"
)

// navRoutes are the dashboard screens in tab-bar order; key i+1 selects
// navRoutes[i].
var navRoutes = []struct{ path, label string }{
	{routeDashboard, "Dashboard"},
	{routeInvoices, "Invoices"},
	{routePurchases, "Purchases"},
	{routeAllData, "All data"},
}

func knownRoute(path string) bool {
	switch path {
	case routeSplash, routeLogin, routeSignup:
		return true
	}
	for _, r := range navRoutes {
		if r.path == path {
			return true
		}
	}
	return false
}

// ─── async messages ───────────────────────────────────────────────────────────

type restoredMsg struct{}

type loggedOutMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Nav     key.Binding
	Back    key.Binding
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Logout  key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Nav:     key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "switch screen")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to dashboard")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new record")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit record")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete record")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log out")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Nav, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Nav, k.Back, k.Refresh},
		{k.New, k.Edit, k.Delete},
		{k.Logout, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns routing, the session guard,
// the global help overlay, and the command palette. Business logic is
// delegated to the ports; rendering is delegated to the sub-views.
type Model struct {
	session SessionPort

	splashView    splashview.Model
	loginView     authview.Model
	signupView    authview.Model
	overviewView  overviewview.Model
	invoicesView  recordsview.Model
	purchasesView recordsview.Model
	allDataView   alldataview.Model

	route    string
	state    sessiondto.StateOutput
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(deps Deps) Model {
	invoices := invoiceSource{p: deps.Invoices}
	purchases := purchaseSource{p: deps.Purchases}
	return Model{
		session:       deps.Session,
		splashView:    splashview.New(),
		loginView:     authview.New(deps.Session, authview.ModeLogin),
		signupView:    authview.New(deps.Session, authview.ModeSignup),
		overviewView:  overviewview.New(deps.Dashboard),
		invoicesView:  recordsview.New(invoices),
		purchasesView: recordsview.New(purchases),
		allDataView:   alldataview.New(invoices, purchases),
		route:         routeSplash,
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(),
		status:        "restoring session",
	}
}

func (m Model) Init() tea.Cmd {
	return m.restoreCmd()
}

// Route is the screen currently shown.
func (m Model) Route() string { return m.route }

// Status is the status bar message.
func (m Model) Status() string { return m.status }

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		return m, m.propagateSize()

	case restoredMsg:
		m.state = m.session.State(context.Background())
		start := routeSplash
		if m.state.LoggedIn {
			start = routeDashboard
			m.status = "welcome back, " + m.state.User.Email
		} else {
			m.status = "ready"
		}
		return m, m.navigate(start)

	case components.NavigateMsg:
		return m, m.navigate(msg.Path)

	case authview.AuthenticatedMsg:
		m.status = "signed in as " + msg.User.Email
		return m, m.navigate(routeDashboard)

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "logged out (local state not fully cleared: " + msg.err.Error() + ")"
		} else {
			m.status = "logged out"
		}
		return m, m.navigate(routeSplash)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the active view while it owns the keyboard.
		if m.capturing() {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}

		if m.state.LoggedIn && strings.HasPrefix(m.route, routeDashboard) {
			switch k := msg.String(); k {
			case "1", "2", "3", "4":
				return m, m.navigate(navRoutes[k[0]-'1'].path)
			case "esc":
				if m.route != routeDashboard {
					return m, m.navigate(routeDashboard)
				}
				return m, nil
			case "L":
				return m, m.logoutCmd()
			}
		}
	}

	return m, m.updateActive(msg)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	navBar := m.renderNavBar()
	statusBar := m.renderStatusBar()

	contentH := max(m.height-lipgloss.Height(navBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, navBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.route {
	case routeLogin:
		return m.loginView.View()
	case routeSignup:
		return m.signupView.View()
	case routeDashboard:
		return m.overviewView.View()
	case routeInvoices:
		return m.invoicesView.View()
	case routePurchases:
		return m.purchasesView.View()
	case routeAllData:
		return m.allDataView.View()
	}
	return m.splashView.View()
}

func (m Model) renderNavBar() string {
	bar := theme.Hot.Render("ledgerdesk")
	if m.state.LoggedIn && strings.HasPrefix(m.route, routeDashboard) {
		parts := make([]string, len(navRoutes))
		for i, r := range navRoutes {
			label := fmt.Sprintf(" %d %s ", i+1, r.label)
			if r.path == m.route {
				parts[i] = theme.Hot.Render(label)
			} else {
				parts[i] = theme.Muted.Render(label)
			}
		}
		bar += "  " + strings.Join(parts, theme.Muted.Render("│"))
	}
	if m.state.LoggedIn {
		user := theme.Muted.Render(m.state.User.Email + " · role: " + roleOf(m.state.User))
		gap := max(m.width-lipgloss.Width(bar)-lipgloss.Width(user), 1)
		bar += strings.Repeat(" ", gap) + user
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  :::palette  q:quit")
	if m.route == routeLogin || m.route == routeSignup {
		right = theme.Muted.Render("esc:back  ctrl+c:quit")
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch {
	case strings.HasPrefix(parts[0], "go:"):
		return m, m.navigate(strings.TrimPrefix(parts[0], "go:"))

	case parts[0] == "refresh":
		return m, m.reloadActive()

	case parts[0] == "logout":
		if !m.state.LoggedIn {
			m.status = "not logged in"
			return m, nil
		}
		return m, m.logoutCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── routing ─────────────────────────────────────────────────────────────────

// navigate applies the session guard to path and activates the resulting
// screen, returning the command that loads its data.
func (m *Model) navigate(path string) tea.Cmd {
	if !knownRoute(path) {
		m.status = "unknown route: " + path
		return nil
	}
	ctx := context.Background()
	decision := m.session.Route(ctx, path)
	m.state = m.session.State(ctx)
	if decision.Redirect {
		m.status = "please log in to open " + path
	}
	m.route = decision.Path

	switch m.route {
	case routeLogin:
		m.session.ClearError(ctx)
		return m.loginView.Reset()
	case routeSignup:
		m.session.ClearError(ctx)
		return m.signupView.Reset()
	case routeDashboard:
		m.overviewView.SetGreeting(m.state.User.Email)
	}
	return m.reloadActive()
}

func (m *Model) reloadActive() tea.Cmd {
	privileged := m.state.User.Privileged
	switch m.route {
	case routeDashboard:
		return m.overviewView.Load()
	case routeInvoices:
		m.invoicesView.SetPrivileged(privileged)
		return m.invoicesView.Load()
	case routePurchases:
		m.purchasesView.SetPrivileged(privileged)
		return m.purchasesView.Load()
	case routeAllData:
		m.allDataView.SetPrivileged(privileged)
		return m.allDataView.Load()
	}
	return nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// capturing reports whether the active view owns the keyboard, in which case
// global key bindings must yield to allow free typing.
func (m Model) capturing() bool {
	switch m.route {
	case routeLogin, routeSignup:
		return true
	case routeInvoices:
		return m.invoicesView.Capturing()
	case routePurchases:
		return m.purchasesView.Capturing()
	case routeAllData:
		return m.allDataView.Capturing()
	}
	return false
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.route {
	case routeLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case routeSignup:
		m.signupView, cmd = m.signupView.Update(msg)
	case routeDashboard:
		m.overviewView, cmd = m.overviewView.Update(msg)
	case routeInvoices:
		m.invoicesView, cmd = m.invoicesView.Update(msg)
	case routePurchases:
		m.purchasesView, cmd = m.purchasesView.Update(msg)
	case routeAllData:
		m.allDataView, cmd = m.allDataView.Update(msg)
	default:
		m.splashView, cmd = m.splashView.Update(msg)
	}
	return cmd
}

func (m *Model) propagateSize() tea.Cmd {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	var cmds [7]tea.Cmd
	m.splashView, cmds[0] = m.splashView.Update(sz)
	m.loginView, cmds[1] = m.loginView.Update(sz)
	m.signupView, cmds[2] = m.signupView.Update(sz)
	m.overviewView, cmds[3] = m.overviewView.Update(sz)
	m.invoicesView, cmds[4] = m.invoicesView.Update(sz)
	m.purchasesView, cmds[5] = m.purchasesView.Update(sz)
	m.allDataView, cmds[6] = m.allDataView.Update(sz)
	return tea.Batch(cmds[:]...)
}

func roleOf(user sessiondto.UserOutput) string {
	if user.Role == "" {
		return "user"
	}
	return user.Role
}

// ─── async commands ───────────────────────────────────────────────────────────

// restoreCmd finishes session restoration when the store has not loaded yet.
func (m Model) restoreCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		ctx := context.Background()
		if session.State(ctx).Loading {
			session.Restore(ctx)
		}
		return restoredMsg{}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(context.Background())}
	}
}
