// Package scenario provides a high-level test scenario that wires a fake or
// real repository, a scripted prompter and a captured logger into a runtime
// Context, giving action tests a terse setup.
package scenario

import (
	"bytes"
	"context"
	"testing"

	"snailgit.dev/snailgit/internal/git"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
	"snailgit.dev/snailgit/testhelpers"
)

// Scenario bundles a runtime Context with the test doubles behind it.
type Scenario struct {
	T        *testing.T
	Git      *testhelpers.FakeRunner
	Scene    *testhelpers.Scene
	Prompter *testhelpers.ScriptedPrompter
	Output   *bytes.Buffer
	Context  *runtime.Context
}

// NewScenario creates a Scenario over a FakeRunner.
func NewScenario(t *testing.T) *Scenario {
	t.Helper()

	fake := testhelpers.NewFakeRunner()
	s := newScenario(t, fake)
	s.Git = fake
	s.Context.RepoRoot = fake.Root
	return s
}

// NewRepoScenario creates a Scenario over a real temporary repository.
func NewRepoScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	scene := testhelpers.NewScene(t, setup)
	s := newScenario(t, git.NewRunner(scene.Dir))
	s.Scene = scene
	if err := s.Context.Open(); err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}
	return s
}

func newScenario(t *testing.T, runner git.Runner) *Scenario {
	out := &bytes.Buffer{}
	prompter := testhelpers.NewScriptedPrompter()
	ctx := runtime.NewContext(context.Background(), runtime.Options{
		Git:      runner,
		Splog:    tui.NewSplogWithWriter(out),
		Prompter: prompter,
	})
	return &Scenario{
		T:        t,
		Prompter: prompter,
		Output:   out,
		Context:  ctx,
	}
}

// WithAnswers queues scripted prompt answers.
func (s *Scenario) WithAnswers(answers ...testhelpers.Answer) *Scenario {
	s.Prompter.Answers = append(s.Prompter.Answers, answers...)
	return s
}

// WithStatus replaces the fake repository status.
func (s *Scenario) WithStatus(status *git.Status) *Scenario {
	s.Git.StatusResult = status
	return s
}

// Out returns everything logged so far.
func (s *Scenario) Out() string {
	return s.Output.String()
}
