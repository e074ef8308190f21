package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	snailerrors "snailgit.dev/snailgit/internal/errors"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via SNAILGIT_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (SNAILGIT_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("SNAILGIT_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// SelectOption represents a single choice in a select prompt
type SelectOption struct {
	Label string
	Value string
}

// CheckboxItem is one row of a checkbox prompt.
// Locked items keep their Checked state and cannot be toggled.
type CheckboxItem struct {
	Label   string
	Value   string
	Group   string
	Checked bool
	Locked  bool
}

// Prompter asks the user questions. Every method returns
// snailerrors.ErrCanceled when the user aborts with Ctrl+C.
type Prompter interface {
	Select(message string, options []SelectOption, defaultValue string) (string, error)
	Checkbox(message string, items []CheckboxItem) ([]string, error)
	Confirm(message string, defaultValue bool) (bool, error)
	Input(message, defaultValue string, validate func(string) error) (string, error)
	Multiline(message string) (string, error)
}

// NewPrompter returns the terminal prompter
func NewPrompter() Prompter {
	return &terminalPrompter{}
}

type terminalPrompter struct{}

func (p *terminalPrompter) Select(message string, options []SelectOption, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no options to choose from")
	}

	labels := make([]string, len(options))
	prompt := &survey.Select{Message: message, PageSize: 15}
	for i, opt := range options {
		labels[i] = opt.Label
		if defaultValue != "" && opt.Value == defaultValue {
			prompt.Default = opt.Label
		}
	}
	prompt.Options = labels

	var index int
	if err := survey.AskOne(prompt, &index); err != nil {
		return "", mapPromptError(err)
	}
	return options[index].Value, nil
}

func (p *terminalPrompter) Checkbox(message string, items []CheckboxItem) ([]string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return nil, err
	}
	return RunCheckbox(message, items)
}

func (p *terminalPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}
	answer := defaultValue
	prompt := &survey.Confirm{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, mapPromptError(err)
	}
	return answer, nil
}

func (p *terminalPrompter) Input(message, defaultValue string, validate func(string) error) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	var answer string
	prompt := &survey.Input{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", mapPromptError(err)
	}
	return answer, nil
}

func (p *terminalPrompter) Multiline(message string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	var answer string
	prompt := &survey.Multiline{Message: message}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", mapPromptError(err)
	}
	return answer, nil
}

func mapPromptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return snailerrors.ErrCanceled
	}
	return err
}
