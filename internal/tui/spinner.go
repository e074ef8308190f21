package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type workDoneMsg struct {
	err error
}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	err     error
	done    bool
}

func newSpinnerModel(title string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	// Keys are ignored: the running git process cannot be interrupted from here.
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.title)
}

// RunWithSpinner runs fn while showing a spinner with the given title.
// Without a TTY fn simply runs in the foreground. The result is always fn's,
// returned only after fn has finished.
func RunWithSpinner(title string, fn func() error) error {
	if !IsTTY() {
		return fn()
	}

	p := tea.NewProgram(newSpinnerModel(title), tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	return runWithProgress(func() error {
		_, err := p.Run()
		return err
	}, fn, func(err error) {
		p.Send(workDoneMsg{err: err})
	})
}

// runWithProgress runs fn in the background while show blocks in the
// foreground. It waits for fn even when show fails early.
func runWithProgress(show func() error, fn func() error, done func(error)) error {
	result := make(chan error, 1)
	go func() {
		err := fn()
		result <- err
		done(err)
	}()

	// a failed spinner only loses the animation
	_ = show()
	return <-result
}
