package testhelpers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"snailgit.dev/snailgit/internal/git"
)

// Divergence is an ahead/behind pair for a local branch against its upstream.
type Divergence struct {
	Ahead  int
	Behind int
}

// FakeRunner is an in-memory git.Runner for action tests. Every call is
// recorded in Calls; Errors injects a failure for a call name ("Push") or for a
// call with its first argument ("Add b.txt").
type FakeRunner struct {
	Root    string
	NotRepo bool

	StatusResult *git.Status
	// StatusFunc, when set, overrides StatusResult and is invoked per query.
	StatusFunc func() (*git.Status, error)

	Branch         string
	Branches       []string
	// Unmerged branches refuse a non-forced delete.
	Unmerged       []string
	RemoteBranches []string
	Upstreams      map[string]string
	Divergences    map[string]Divergence
	Unpushed       int

	Head         string
	History      []git.LogEntry
	Outgoing     []git.LogEntry
	Changed      []string
	PushResponse *git.PushResult

	Stashes      []git.StashEntry
	TagNames     []string
	RemoteList   []git.Remote
	ConfigValues map[string]string

	Errors map[string]error
	Calls  []string
}

// NewFakeRunner returns a fake repository on branch main with a clean status.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Root:         "/repo",
		StatusResult: &git.Status{Current: "main"},
		Branch:       "main",
		Branches:     []string{"main"},
		Upstreams:    map[string]string{},
		Divergences:  map[string]Divergence{},
		Head:         "0123456789abcdef0123456789abcdef01234567",
		ConfigValues: map[string]string{},
		Errors:       map[string]error{},
	}
}

// Track gives branch an upstream with the given divergence.
func (f *FakeRunner) Track(branch, upstream string, ahead, behind int) *FakeRunner {
	f.Upstreams[branch] = upstream
	f.Divergences[branch] = Divergence{Ahead: ahead, Behind: behind}
	return f
}

// CallsWithPrefix returns the recorded calls starting with prefix.
func (f *FakeRunner) CallsWithPrefix(prefix string) []string {
	var calls []string
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			calls = append(calls, c)
		}
	}
	return calls
}

// HasCall reports whether a call with exactly this text was recorded.
func (f *FakeRunner) HasCall(call string) bool {
	for _, c := range f.Calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *FakeRunner) record(name string, args ...string) error {
	call := strings.TrimSpace(name + " " + strings.Join(args, " "))
	f.Calls = append(f.Calls, call)
	if err, ok := f.Errors[call]; ok {
		return err
	}
	if len(args) > 0 {
		if err, ok := f.Errors[name+" "+args[0]]; ok {
			return err
		}
	}
	return f.Errors[name]
}

func (f *FakeRunner) CheckRepo(_ context.Context) error {
	if f.NotRepo {
		return fmt.Errorf("not a git repository")
	}
	return f.record("CheckRepo")
}

func (f *FakeRunner) RepoRoot() string {
	return f.Root
}

func (f *FakeRunner) Status(_ context.Context) (*git.Status, error) {
	if err := f.record("Status"); err != nil {
		return nil, err
	}
	if f.StatusFunc != nil {
		return f.StatusFunc()
	}
	status := *f.StatusResult
	return &status, nil
}

// Add marks the path as staged in StatusResult.
func (f *FakeRunner) Add(_ context.Context, path string) error {
	if err := f.record("Add", path); err != nil {
		return err
	}
	if f.StatusResult != nil && !f.StatusResult.IsStaged(path) {
		f.StatusResult.Staged = append(f.StatusResult.Staged, path)
	}
	return nil
}

func (f *FakeRunner) ResetIndex(_ context.Context) error {
	return f.record("ResetIndex")
}

func (f *FakeRunner) DiscardWorktree(_ context.Context) error {
	return f.record("DiscardWorktree")
}

func (f *FakeRunner) Commit(_ context.Context, message string) error {
	return f.record("Commit", message)
}

func (f *FakeRunner) ResetSoft(_ context.Context, revision string) error {
	return f.record("ResetSoft", revision)
}

func (f *FakeRunner) ResetHard(_ context.Context, revision string) error {
	return f.record("ResetHard", revision)
}

func (f *FakeRunner) HeadHash(_ context.Context) (string, error) {
	if err := f.record("HeadHash"); err != nil {
		return "", err
	}
	return f.Head, nil
}

func (f *FakeRunner) Log(_ context.Context, maxCount int) ([]git.LogEntry, error) {
	if err := f.record("Log", fmt.Sprint(maxCount)); err != nil {
		return nil, err
	}
	if maxCount > 0 && len(f.History) > maxCount {
		return f.History[:maxCount], nil
	}
	return f.History, nil
}

func (f *FakeRunner) LogRange(_ context.Context, base, head string) ([]git.LogEntry, error) {
	if err := f.record("LogRange", base, head); err != nil {
		return nil, err
	}
	return f.Outgoing, nil
}

func (f *FakeRunner) ChangedFiles(_ context.Context, base, head string) ([]string, error) {
	if err := f.record("ChangedFiles", base, head); err != nil {
		return nil, err
	}
	return f.Changed, nil
}

func (f *FakeRunner) Fetch(_ context.Context, remote string) error {
	return f.record("Fetch", remote)
}

// Pull clears the current branch's behind count.
func (f *FakeRunner) Pull(_ context.Context, remote, branch string) error {
	if err := f.record("Pull", remote, branch); err != nil {
		return err
	}
	f.clearBehind(f.Branch)
	return nil
}

// FastForward clears the local branch's behind count.
func (f *FakeRunner) FastForward(_ context.Context, remote, remoteBranch, localBranch string) error {
	if err := f.record("FastForward", localBranch, remote, remoteBranch); err != nil {
		return err
	}
	f.clearBehind(localBranch)
	return nil
}

func (f *FakeRunner) clearBehind(branch string) {
	if d, ok := f.Divergences[branch]; ok {
		d.Behind = 0
		f.Divergences[branch] = d
	}
}

func (f *FakeRunner) Push(_ context.Context, opts git.PushOptions) (*git.PushResult, error) {
	args := []string{opts.Remote, opts.Refspec()}
	if opts.SetUpstream {
		args = append(args, "-u")
	}
	if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	if err := f.record("Push", args...); err != nil {
		return nil, err
	}
	if f.PushResponse != nil {
		return f.PushResponse, nil
	}
	return &git.PushResult{Remote: opts.Remote}, nil
}

// AheadBehind looks up the local branch's divergence.
func (f *FakeRunner) AheadBehind(_ context.Context, local, upstream string) (int, int, error) {
	if err := f.record("AheadBehind", local, upstream); err != nil {
		return 0, 0, err
	}
	d, ok := f.Divergences[local]
	if !ok {
		return 0, 0, fmt.Errorf("unknown revision %s", upstream)
	}
	return d.Ahead, d.Behind, nil
}

func (f *FakeRunner) BranchUpstreams(_ context.Context) (map[string]string, error) {
	if err := f.record("BranchUpstreams"); err != nil {
		return nil, err
	}
	upstreams := make(map[string]string, len(f.Upstreams))
	for k, v := range f.Upstreams {
		upstreams[k] = v
	}
	return upstreams, nil
}

func (f *FakeRunner) UnpushedCount(_ context.Context) (int, error) {
	if err := f.record("UnpushedCount"); err != nil {
		return 0, err
	}
	return f.Unpushed, nil
}

func (f *FakeRunner) CurrentBranch(_ context.Context) (string, error) {
	if err := f.record("CurrentBranch"); err != nil {
		return "", err
	}
	return f.Branch, nil
}

func (f *FakeRunner) BranchNames(_ context.Context) ([]string, error) {
	if err := f.record("BranchNames"); err != nil {
		return nil, err
	}
	names := append([]string{}, f.Branches...)
	sort.Strings(names)
	return names, nil
}

func (f *FakeRunner) RemoteBranchNames(_ context.Context) ([]string, error) {
	if err := f.record("RemoteBranchNames"); err != nil {
		return nil, err
	}
	return f.RemoteBranches, nil
}

func (f *FakeRunner) CreateBranch(_ context.Context, name string) error {
	if err := f.record("CreateBranch", name); err != nil {
		return err
	}
	f.Branches = append(f.Branches, name)
	return nil
}

func (f *FakeRunner) CheckoutBranch(_ context.Context, name string) error {
	if err := f.record("CheckoutBranch", name); err != nil {
		return err
	}
	f.Branch = name
	return nil
}

func (f *FakeRunner) DeleteBranch(_ context.Context, name string, force bool) error {
	args := []string{name}
	if force {
		args = append(args, "--force")
	}
	if err := f.record("DeleteBranch", args...); err != nil {
		return err
	}
	if !force {
		for _, b := range f.Unmerged {
			if b == name {
				return fmt.Errorf("error: the branch '%s' is not fully merged", name)
			}
		}
	}
	for i, b := range f.Branches {
		if b == name {
			f.Branches = append(f.Branches[:i], f.Branches[i+1:]...)
			break
		}
	}
	return nil
}

func (f *FakeRunner) MergeBranch(_ context.Context, name string) error {
	return f.record("MergeBranch", name)
}

func (f *FakeRunner) StashList(_ context.Context) ([]git.StashEntry, error) {
	if err := f.record("StashList"); err != nil {
		return nil, err
	}
	return f.Stashes, nil
}

func (f *FakeRunner) StashSave(_ context.Context, message string) error {
	return f.record("StashSave", message)
}

func (f *FakeRunner) StashApply(_ context.Context, ref string) error {
	return f.record("StashApply", ref)
}

func (f *FakeRunner) StashDrop(_ context.Context, ref string) error {
	return f.record("StashDrop", ref)
}

func (f *FakeRunner) StashBranch(_ context.Context, branch string) error {
	return f.record("StashBranch", branch)
}

func (f *FakeRunner) Tags(_ context.Context) ([]string, error) {
	if err := f.record("Tags"); err != nil {
		return nil, err
	}
	return f.TagNames, nil
}

func (f *FakeRunner) CreateTag(_ context.Context, name, message string) error {
	if err := f.record("CreateTag", name, message); err != nil {
		return err
	}
	f.TagNames = append(f.TagNames, name)
	return nil
}

func (f *FakeRunner) DeleteTag(_ context.Context, name string) error {
	return f.record("DeleteTag", name)
}

func (f *FakeRunner) PushTags(_ context.Context, remote string) error {
	return f.record("PushTags", remote)
}

func (f *FakeRunner) Remotes(_ context.Context) ([]git.Remote, error) {
	if err := f.record("Remotes"); err != nil {
		return nil, err
	}
	return f.RemoteList, nil
}

func (f *FakeRunner) AddRemote(_ context.Context, name, url string) error {
	return f.record("AddRemote", name, url)
}

func (f *FakeRunner) RenameRemote(_ context.Context, oldName, newName string) error {
	return f.record("RenameRemote", oldName, newName)
}

func (f *FakeRunner) RemoveRemote(_ context.Context, name string) error {
	return f.record("RemoveRemote", name)
}

func (f *FakeRunner) ConfigList(_ context.Context, scope git.ConfigScope) (string, error) {
	if err := f.record("ConfigList", string(scope)); err != nil {
		return "", err
	}
	var lines []string
	for k, v := range f.ConfigValues {
		if strings.HasPrefix(k, string(scope)+":") {
			lines = append(lines, strings.TrimPrefix(k, string(scope)+":")+"="+v)
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), nil
}

func (f *FakeRunner) ConfigGet(_ context.Context, scope git.ConfigScope, key string) (string, error) {
	if err := f.record("ConfigGet", string(scope), key); err != nil {
		return "", err
	}
	return f.ConfigValues[string(scope)+":"+key], nil
}

func (f *FakeRunner) ConfigSet(_ context.Context, scope git.ConfigScope, key, value string) error {
	if err := f.record("ConfigSet", string(scope), key, value); err != nil {
		return err
	}
	f.ConfigValues[string(scope)+":"+key] = value
	return nil
}

var _ git.Runner = (*FakeRunner)(nil)
