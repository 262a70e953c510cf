package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ledgerdesk/internal/ui/components"
	"ledgerdesk/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Row is one record as the list shows it. Values prefills the edit form.
type Row struct {
	ID     string
	Title  string
	Detail string
	Status string
	Values map[string]string
}

// Source is a record collection the view can list and mutate.
type Source interface {
	// Name is the plural display name, e.g. "Invoices".
	Name() string
	// Fields lists the form rows used for create and edit.
	Fields() []components.Field
	List(ctx context.Context) ([]Row, error)
	Create(ctx context.Context, values map[string]string) error
	Update(ctx context.Context, id string, values map[string]string) error
	Delete(ctx context.Context, id string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Source string
	Rows   []Row
	Err    error
}

type SavedMsg struct {
	Source  string
	Created bool
	Err     error
}

type DeletedMsg struct {
	Source string
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type rowItem struct{ row Row }

func (i rowItem) Title() string { return i.row.Title }
func (i rowItem) Description() string {
	return i.row.Detail + "  " + theme.Status(i.row.Status)
}
func (i rowItem) FilterValue() string { return i.row.Title + " " + i.row.Status }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	src        Source
	list       list.Model
	form       components.Form
	spinner    spinner.Model
	loading    bool
	editing    bool
	editID     string
	confirm    bool
	privileged bool
	notice     string
	err        string
	width      int
	height     int
}

func New(src Source) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = src.Name()
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	// q and esc belong to the router; d deletes.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		src:     src,
		list:    l,
		form:    components.NewForm(strings.ToLower(src.Name()), "", src.Fields()),
		spinner: sp,
	}
}

// SetPrivileged enables the create, edit and delete keys.
func (m *Model) SetPrivileged(ok bool) {
	m.privileged = ok
	if !ok {
		m.editing = false
		m.confirm = false
	}
}

// Load starts a fetch of the collection.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	m.err = ""
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Capturing reports whether keys must reach this view untouched, because a
// form, a confirmation, or a list filter is open.
func (m Model) Capturing() bool {
	return m.editing || m.confirm || m.list.FilterState() == list.Filtering
}

// Len is the number of loaded records.
func (m Model) Len() int { return len(m.list.Items()) }

// Editing reports whether the create/edit form is open.
func (m Model) Editing() bool { return m.editing }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, max(m.height-2, 1))
		m.form.SetWidth(min(m.width-4, 72))
		return m, nil

	case LoadedMsg:
		if msg.Source != m.src.Name() {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, m.list.SetItems(nil)
		}
		items := make([]list.Item, len(msg.Rows))
		for i, r := range msg.Rows {
			items[i] = rowItem{row: r}
		}
		return m, m.list.SetItems(items)

	case SavedMsg:
		if msg.Source != m.src.Name() {
			return m, nil
		}
		if msg.Err != nil {
			m.form.SetError(msg.Err.Error())
			return m, nil
		}
		m.editing = false
		m.notice = "saved"
		if msg.Created {
			m.notice = "created"
		}
		return m, m.Load()

	case DeletedMsg:
		if msg.Source != m.src.Name() {
			return m, nil
		}
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.notice = "deleted"
		return m, m.Load()

	case components.FormSubmitMsg:
		if msg.Form != m.form.Name() || !m.editing {
			return m, nil
		}
		m.form.SetError("")
		return m, m.saveCmd(m.editID, msg.Values)

	case components.FormCancelMsg:
		if msg.Form == m.form.Name() {
			m.editing = false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.editing {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		if m.confirm {
			m.confirm = false
			if msg.String() == "y" {
				if row, ok := m.selected(); ok {
					return m, m.deleteCmd(row.ID)
				}
			}
			m.notice = "delete cancelled"
			return m, nil
		}
		if m.loading {
			return m, nil
		}
		if m.list.FilterState() != list.Filtering {
			if cmd, handled := m.handleKey(msg.String()); handled {
				return m, cmd
			}
		}
	}

	if m.loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(k string) (tea.Cmd, bool) {
	switch k {
	case "r":
		m.notice = ""
		return m.Load(), true
	case "n":
		if !m.privileged {
			return nil, false
		}
		m.editing = true
		m.editID = ""
		m.form.SetTitle("New " + singular(m.src.Name()))
		return m.form.Reset(), true
	case "e":
		row, ok := m.selected()
		if !m.privileged || !ok {
			return nil, false
		}
		m.editing = true
		m.editID = row.ID
		m.form.SetTitle("Edit " + singular(m.src.Name()))
		cmd := m.form.Reset()
		m.form.SetValues(row.Values)
		return cmd, true
	case "d":
		if _, ok := m.selected(); !m.privileged || !ok {
			return nil, false
		}
		m.confirm = true
		return nil, true
	}
	return nil, false
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading "+strings.ToLower(m.src.Name())+"…")
	}
	if m.editing {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	}

	var footer string
	switch {
	case m.confirm:
		row, _ := m.selected()
		footer = theme.Hot.Render(fmt.Sprintf("Delete %q? y to confirm, any other key to cancel", row.Title))
	case m.err != "":
		footer = theme.Error.Render(m.err)
	case m.notice != "":
		footer = theme.Muted.Render(m.notice)
	}
	keys := "r: refresh  /: filter"
	if m.privileged {
		keys = "n: new  e: edit  d: delete  " + keys
	}

	body := m.list.View()
	if len(m.list.Items()) == 0 && m.err == "" {
		body = theme.Title.Render(m.src.Name()) + "\n\n" +
			theme.Muted.Render("No "+strings.ToLower(m.src.Name())+" yet")
		body = lipgloss.NewStyle().Height(max(m.height-2, 1)).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer, theme.Muted.Render(keys))
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) selected() (Row, bool) {
	if item, ok := m.list.SelectedItem().(rowItem); ok {
		return item.row, true
	}
	return Row{}, false
}

func singular(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), "s")
}

func (m Model) loadCmd() tea.Cmd {
	src := m.src
	return func() tea.Msg {
		rows, err := src.List(context.Background())
		return LoadedMsg{Source: src.Name(), Rows: rows, Err: err}
	}
}

func (m Model) saveCmd(id string, values map[string]string) tea.Cmd {
	src := m.src
	return func() tea.Msg {
		ctx := context.Background()
		if id == "" {
			return SavedMsg{Source: src.Name(), Created: true, Err: src.Create(ctx, values)}
		}
		return SavedMsg{Source: src.Name(), Err: src.Update(ctx, id, values)}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	src := m.src
	return func() tea.Msg {
		return DeletedMsg{Source: src.Name(), Err: src.Delete(context.Background(), id)}
	}
}
