package actions

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	snailerrors "snailgit.dev/snailgit/internal/errors"
	"snailgit.dev/snailgit/internal/runtime"
	"snailgit.dev/snailgit/internal/tui"
)

// CommitType is a conventional commit category
type CommitType string

const (
	CommitFeat     CommitType = "feat"
	CommitFix      CommitType = "fix"
	CommitDocs     CommitType = "docs"
	CommitStyle    CommitType = "style"
	CommitRefactor CommitType = "refactor"
	CommitPerf     CommitType = "perf"
	CommitTest     CommitType = "test"
	CommitBuild    CommitType = "build"
	CommitCI       CommitType = "ci"
	CommitChore    CommitType = "chore"
	CommitRevert   CommitType = "revert"
)

// MaxSubjectLength is the longest accepted subject, in characters
const MaxSubjectLength = 72

var commitTypeDescriptions = []struct {
	Type        CommitType
	Description string
}{
	{CommitFeat, "A new feature"},
	{CommitFix, "A bug fix"},
	{CommitDocs, "Documentation only changes"},
	{CommitStyle, "Formatting, no code change"},
	{CommitRefactor, "Code change that neither fixes a bug nor adds a feature"},
	{CommitPerf, "Performance improvement"},
	{CommitTest, "Adding or correcting tests"},
	{CommitBuild, "Build system or external dependencies"},
	{CommitCI, "CI configuration"},
	{CommitChore, "Other changes"},
	{CommitRevert, "Revert a previous commit"},
}

var scopePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// CommitInfo holds the parts of a conventional commit message
type CommitInfo struct {
	Type    CommitType
	Scope   string
	Subject string
	Body    string
}

// CommitTypes returns the accepted commit types in menu order
func CommitTypes() []CommitType {
	types := make([]CommitType, len(commitTypeDescriptions))
	for i, d := range commitTypeDescriptions {
		types[i] = d.Type
	}
	return types
}

// IsValidCommitType reports whether t is one of the accepted types
func IsValidCommitType(t CommitType) bool {
	for _, d := range commitTypeDescriptions {
		if d.Type == t {
			return true
		}
	}
	return false
}

// ValidateScope accepts an empty scope or letters, digits and hyphens
func ValidateScope(scope string) error {
	if scope == "" {
		return nil
	}
	if !scopePattern.MatchString(scope) {
		return fmt.Errorf("scope may only contain letters, digits and hyphens")
	}
	return nil
}

// ValidateSubject requires a trimmed subject of 1 to MaxSubjectLength characters
func ValidateSubject(subject string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(subject))
	if n == 0 {
		return fmt.Errorf("subject is required")
	}
	if n > MaxSubjectLength {
		return fmt.Errorf("subject must be at most %d characters (got %d)", MaxSubjectLength, n)
	}
	return nil
}

// CleanBody drops lines starting with '#' and surrounding blank lines
func CleanBody(body string) string {
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \t"))
	}
	return strings.Trim(strings.Join(kept, "\n"), "\n")
}

// RenderCommitMessage formats info as "type(scope): subject", followed by a
// blank line and the cleaned body when one remains.
func RenderCommitMessage(info CommitInfo) string {
	var b strings.Builder
	b.WriteString(string(info.Type))
	if scope := strings.TrimSpace(info.Scope); scope != "" {
		b.WriteString("(" + scope + ")")
	}
	b.WriteString(": ")
	b.WriteString(strings.TrimSpace(info.Subject))

	if body := CleanBody(info.Body); body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	return b.String()
}

// CommitOptions contains options for the commit command
type CommitOptions struct{}

// CommitAction composes a conventional commit for the staged changes.
// It returns nil info when there is nothing staged or the user declines.
func CommitAction(ctx *runtime.Context, _ CommitOptions) (*CommitInfo, error) {
	splog := ctx.Splog

	status, err := queryStatus(ctx)
	if err != nil {
		return nil, err
	}
	if len(status.Staged) == 0 {
		splog.Warn("Nothing is staged. Stage files before committing.")
		return nil, nil
	}

	files := ctx.Selection.Files()
	if len(files) == 0 {
		files = status.Staged
	}
	splog.Info("Files in this commit:")
	for _, f := range files {
		splog.Info("  • %s", f)
	}
	splog.Newline()

	info, err := promptCommitInfo(ctx)
	if err != nil {
		return nil, err
	}

	message := RenderCommitMessage(*info)
	splog.Info("Commit message:")
	splog.Page(indent(message, "  ") + "\n")
	splog.Newline()

	confirmed, err := ctx.Prompter.Confirm("Create this commit?", true)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		splog.Info("Commit canceled.")
		return nil, nil
	}

	if err := ctx.Git.Commit(ctx, message); err != nil {
		return nil, snailerrors.NewCommitError(err)
	}
	splog.Success("Committed %s", tui.Bold(strings.SplitN(message, "\n", 2)[0]))

	reportAhead(ctx)
	return info, nil
}

func promptCommitInfo(ctx *runtime.Context) (*CommitInfo, error) {
	options := make([]tui.SelectOption, len(commitTypeDescriptions))
	for i, d := range commitTypeDescriptions {
		options[i] = tui.SelectOption{
			Label: fmt.Sprintf("%-9s %s", string(d.Type)+":", d.Description),
			Value: string(d.Type),
		}
	}

	commitType, err := ctx.Prompter.Select("Select the type of change:", options, string(CommitFeat))
	if err != nil {
		return nil, err
	}
	if !IsValidCommitType(CommitType(commitType)) {
		return nil, fmt.Errorf("unknown commit type %q", commitType)
	}

	scope, err := ctx.Prompter.Input("Scope (optional):", "", func(s string) error {
		return ValidateScope(strings.TrimSpace(s))
	})
	if err != nil {
		return nil, err
	}

	subject, err := ctx.Prompter.Input("Short description:", "", ValidateSubject)
	if err != nil {
		return nil, err
	}

	body, err := ctx.Prompter.Multiline("Longer description (optional, lines starting with # are ignored):")
	if err != nil {
		return nil, err
	}

	return &CommitInfo{
		Type:    CommitType(commitType),
		Scope:   strings.TrimSpace(scope),
		Subject: strings.TrimSpace(subject),
		Body:    CleanBody(body),
	}, nil
}

// reportAhead tells the user about unpushed commits; failures are ignored
func reportAhead(ctx *runtime.Context) {
	status, err := ctx.Git.Status(ctx)
	if err != nil {
		ctx.Splog.Debug("Skipping ahead report: %v", err)
		return
	}
	if status.Tracking != "" && status.Ahead > 0 {
		ctx.Splog.Info("Your branch is ahead of %s by %s.", tui.ColorCyan(status.Tracking), plural(status.Ahead, "commit"))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
