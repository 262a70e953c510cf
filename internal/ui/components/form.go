package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ledgerdesk/internal/ui/theme"
)

// Field describes one form row. A field with Options is a picker cycled with
// left/right instead of a free-text input.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Secret      bool
	Options     []string
}

// FormSubmitMsg carries the values of the form named Form.
type FormSubmitMsg struct {
	Form   string
	Values map[string]string
}

// FormCancelMsg is emitted when the user presses esc inside the form.
type FormCancelMsg struct{ Form string }

var (
	formStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Lavender).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	labelStyle   = lipgloss.NewStyle().Foreground(theme.Subtext0).Width(12)
	focusedLabel = labelStyle.Foreground(theme.Peach).Bold(true)
)

// Form is a vertical stack of text inputs and pickers.
type Form struct {
	name   string
	title  string
	fields []Field
	inputs []textinput.Model
	choice []int
	focus  int
	err    string
	width  int
}

func NewForm(name, title string, fields []Field) Form {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 256
		if f.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	return Form{
		name:   name,
		title:  title,
		fields: fields,
		inputs: inputs,
		choice: make([]int, len(fields)),
	}
}

// Name identifies the form in submit and cancel messages.
func (f Form) Name() string { return f.name }

func (f *Form) SetTitle(title string) { f.title = title }

func (f *Form) SetWidth(w int) { f.width = w }

// SetError shows msg under the fields. An empty msg clears it.
func (f *Form) SetError(msg string) { f.err = msg }

func (f Form) Err() string { return f.err }

// Reset clears every value and the error, and moves focus to the first field.
func (f *Form) Reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.choice[i] = 0
	}
	f.err = ""
	return f.setFocus(0)
}

// SetValues prefills fields by key. Picker values that are not among the
// options leave the picker on its first option.
func (f *Form) SetValues(values map[string]string) {
	for i, field := range f.fields {
		v, ok := values[field.Key]
		if !ok {
			continue
		}
		if len(field.Options) == 0 {
			f.inputs[i].SetValue(v)
			continue
		}
		f.choice[i] = 0
		for j, opt := range field.Options {
			if opt == v {
				f.choice[i] = j
			}
		}
	}
}

// Values returns the current value of every field keyed by Field.Key.
func (f Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for i, field := range f.fields {
		if len(field.Options) > 0 {
			out[field.Key] = field.Options[f.choice[i]]
			continue
		}
		out[field.Key] = f.inputs[i].Value()
	}
	return out
}

func (f Form) Focused() int { return f.focus }

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			name := f.name
			return f, func() tea.Msg { return FormCancelMsg{Form: name} }
		case "enter":
			submit := FormSubmitMsg{Form: f.name, Values: f.Values()}
			return f, func() tea.Msg { return submit }
		case "tab", "down":
			return f, f.setFocus((f.focus + 1) % len(f.fields))
		case "shift+tab", "up":
			return f, f.setFocus((f.focus + len(f.fields) - 1) % len(f.fields))
		case "left", "right":
			if opts := f.fields[f.focus].Options; len(opts) > 0 {
				step := 1
				if key.String() == "left" {
					step = len(opts) - 1
				}
				f.choice[f.focus] = (f.choice[f.focus] + step) % len(opts)
				return f, nil
			}
		}
	}
	if len(f.fields[f.focus].Options) > 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f Form) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(f.title) + "\n\n")
	for i, field := range f.fields {
		label := labelStyle
		if i == f.focus {
			label = focusedLabel
		}
		sb.WriteString(label.Render(field.Label) + " ")
		if opts := field.Options; len(opts) > 0 {
			sb.WriteString("‹ " + theme.Status(opts[f.choice[i]]) + " ›")
		} else {
			sb.WriteString(f.inputs[i].View())
		}
		sb.WriteString("\n")
	}
	if f.err != "" {
		sb.WriteString("\n" + theme.Error.Render(f.err) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("tab: next field  ←/→: choose  enter: submit  esc: cancel"))

	w := f.width
	if w < 20 {
		w = 64
	}
	return formStyle.Width(w - 2).Render(sb.String())
}

func (f *Form) setFocus(i int) tea.Cmd {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	if len(f.fields[i].Options) > 0 {
		return nil
	}
	return f.inputs[i].Focus()
}
