package testhelpers

import (
	"fmt"

	"snailgit.dev/snailgit/internal/tui"
)

// PromptKind identifies the prompt an answer is meant for.
type PromptKind string

const (
	PromptSelect    PromptKind = "select"
	PromptCheckbox  PromptKind = "checkbox"
	PromptConfirm   PromptKind = "confirm"
	PromptInput     PromptKind = "input"
	PromptMultiline PromptKind = "multiline"
)

// Answer is one scripted response.
type Answer struct {
	Kind   PromptKind
	Value  string
	Values []string
	Yes    bool
	Err    error
}

// SelectAnswer answers a select prompt with an option value.
func SelectAnswer(value string) Answer { return Answer{Kind: PromptSelect, Value: value} }

// CheckboxAnswer answers a checkbox prompt with the checked values.
func CheckboxAnswer(values ...string) Answer {
	return Answer{Kind: PromptCheckbox, Values: values}
}

// ConfirmAnswer answers a confirm prompt.
func ConfirmAnswer(yes bool) Answer { return Answer{Kind: PromptConfirm, Yes: yes} }

// InputAnswer answers a text input prompt.
func InputAnswer(value string) Answer { return Answer{Kind: PromptInput, Value: value} }

// MultilineAnswer answers a multi-line prompt.
func MultilineAnswer(value string) Answer { return Answer{Kind: PromptMultiline, Value: value} }

// CancelAnswer aborts the prompt of the given kind with err.
func CancelAnswer(kind PromptKind, err error) Answer { return Answer{Kind: kind, Err: err} }

// ScriptedPrompter replays answers in order. Input answers that fail the
// prompt's validator are recorded in Rejected and the next answer is used,
// the way a terminal prompt re-asks.
type ScriptedPrompter struct {
	Answers    []Answer
	Messages   []string
	Checkboxes [][]tui.CheckboxItem
	Options    [][]tui.SelectOption
	Rejected   []string
}

// NewScriptedPrompter creates a prompter that replays answers.
func NewScriptedPrompter(answers ...Answer) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

// Remaining returns the number of unused answers.
func (p *ScriptedPrompter) Remaining() int {
	return len(p.Answers)
}

func (p *ScriptedPrompter) next(kind PromptKind, message string) (Answer, error) {
	p.Messages = append(p.Messages, message)
	if len(p.Answers) == 0 {
		return Answer{}, fmt.Errorf("no scripted answer for %s prompt %q", kind, message)
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	if answer.Kind != kind {
		return Answer{}, fmt.Errorf("scripted %s answer used for %s prompt %q", answer.Kind, kind, message)
	}
	return answer, answer.Err
}

func (p *ScriptedPrompter) Select(message string, options []tui.SelectOption, _ string) (string, error) {
	p.Options = append(p.Options, options)
	answer, err := p.next(PromptSelect, message)
	if err != nil {
		return "", err
	}
	for _, opt := range options {
		if opt.Value == answer.Value {
			return answer.Value, nil
		}
	}
	return "", fmt.Errorf("scripted value %q is not an option of %q", answer.Value, message)
}

// Checkbox returns the scripted values plus every locked item, which a
// terminal user cannot uncheck either.
func (p *ScriptedPrompter) Checkbox(message string, items []tui.CheckboxItem) ([]string, error) {
	p.Checkboxes = append(p.Checkboxes, items)
	answer, err := p.next(PromptCheckbox, message)
	if err != nil {
		return nil, err
	}
	chosen := map[string]bool{}
	for _, v := range answer.Values {
		chosen[v] = true
	}
	values := []string{}
	for _, item := range items {
		if (item.Locked && item.Checked) || chosen[item.Value] {
			values = append(values, item.Value)
		}
	}
	return values, nil
}

func (p *ScriptedPrompter) Confirm(message string, _ bool) (bool, error) {
	answer, err := p.next(PromptConfirm, message)
	if err != nil {
		return false, err
	}
	return answer.Yes, nil
}

func (p *ScriptedPrompter) Input(message, _ string, validate func(string) error) (string, error) {
	for {
		answer, err := p.next(PromptInput, message)
		if err != nil {
			return "", err
		}
		if validate != nil {
			if verr := validate(answer.Value); verr != nil {
				p.Rejected = append(p.Rejected, answer.Value)
				continue
			}
		}
		return answer.Value, nil
	}
}

func (p *ScriptedPrompter) Multiline(message string) (string, error) {
	answer, err := p.next(PromptMultiline, message)
	if err != nil {
		return "", err
	}
	return answer.Value, nil
}

var _ tui.Prompter = (*ScriptedPrompter)(nil)
