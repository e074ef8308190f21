package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	snailerrors "snailgit.dev/snailgit/internal/errors"
)

var (
	checkboxTitleStyle  = lipgloss.NewStyle().Bold(true)
	checkboxGroupStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	checkboxCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	checkboxLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	checkboxHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// CheckboxModel is a multi-select list with optional group headings
type CheckboxModel struct {
	Title    string
	Items    []CheckboxItem
	Cursor   int
	Done     bool
	Canceled bool
}

// NewCheckboxModel creates a checkbox model with the cursor on the first selectable item
func NewCheckboxModel(title string, items []CheckboxItem) CheckboxModel {
	m := CheckboxModel{Title: title, Items: items}
	for i, item := range items {
		if !item.Locked {
			m.Cursor = i
			break
		}
	}
	return m
}

func (m CheckboxModel) Init() tea.Cmd {
	return nil
}

func (m CheckboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.Canceled = true
		m.Done = true
		return m, tea.Quit
	case "enter":
		m.Done = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case " ", "x":
		if m.Cursor < len(m.Items) && !m.Items[m.Cursor].Locked {
			m.Items[m.Cursor].Checked = !m.Items[m.Cursor].Checked
		}
	case "a":
		m.toggleAll()
	}
	return m, nil
}

// toggleAll checks every unlocked item, or clears them if all are already checked
func (m *CheckboxModel) toggleAll() {
	allChecked := true
	for _, item := range m.Items {
		if !item.Locked && !item.Checked {
			allChecked = false
			break
		}
	}
	for i := range m.Items {
		if !m.Items[i].Locked {
			m.Items[i].Checked = !allChecked
		}
	}
}

// Selected returns the values of checked items in display order
func (m CheckboxModel) Selected() []string {
	values := []string{}
	for _, item := range m.Items {
		if item.Checked {
			values = append(values, item.Value)
		}
	}
	return values
}

func (m CheckboxModel) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder
	b.WriteString(checkboxTitleStyle.Render(m.Title))
	b.WriteString("\n")

	group := ""
	for i, item := range m.Items {
		if item.Group != "" && item.Group != group {
			group = item.Group
			b.WriteString(checkboxGroupStyle.Render(group))
			b.WriteString("\n")
		}

		cursor := "  "
		if i == m.Cursor {
			cursor = checkboxCursorStyle.Render("❯ ")
		}
		box := "◯"
		if item.Checked {
			box = "◉"
		}
		line := fmt.Sprintf("%s %s", box, item.Label)
		if item.Locked {
			line = checkboxLockedStyle.Render(line + " (staged)")
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(checkboxHelpStyle.Render("↑/↓ move • space toggle • a all • enter confirm • ctrl+c cancel"))
	return b.String()
}

// RunCheckbox shows a checkbox prompt and returns the checked values
func RunCheckbox(title string, items []CheckboxItem) ([]string, error) {
	model := NewCheckboxModel(title, items)
	p := tea.NewProgram(model, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("checkbox prompt failed: %w", err)
	}

	result, ok := final.(CheckboxModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if result.Canceled {
		return nil, snailerrors.ErrCanceled
	}
	return result.Selected(), nil
}
