package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	snailerrors "snailgit.dev/snailgit/internal/errors"
)

// RenamedPath is a rename reported by status
type RenamedPath struct {
	From string
	To   string
}

// Status is the parsed result of `git status --porcelain=v2 --branch`.
// Each list preserves the order git reported the paths in.
type Status struct {
	Current  string // empty when HEAD is detached
	Tracking string // upstream, e.g. origin/main; empty when none
	Ahead    int
	Behind   int

	Staged     []string // paths with index changes (rename destination for renames)
	Modified   []string // tracked paths modified in the worktree
	Created    []string // paths added to the index
	Deleted    []string // tracked paths deleted in the worktree
	Renamed    []RenamedPath
	Untracked  []string
	Conflicted []string
}

// IsStaged reports whether path has index changes
func (s *Status) IsStaged(path string) bool {
	for _, p := range s.Staged {
		if p == path {
			return true
		}
	}
	return false
}

// IsClean reports whether there is nothing to stage or commit
func (s *Status) IsClean() bool {
	return len(s.Staged) == 0 && len(s.Modified) == 0 && len(s.Deleted) == 0 &&
		len(s.Untracked) == 0 && len(s.Renamed) == 0 && len(s.Conflicted) == 0
}

func (r *realRunner) Status(ctx context.Context) (*Status, error) {
	output, err := r.cmd.RunRaw(ctx, "status", "--porcelain=v2", "--branch", "-z", "--untracked-files=all")
	if err != nil {
		return nil, snailerrors.NewRepositoryAccessError(r.cmd.WorkingDir(), err)
	}
	status, err := ParseStatus(output)
	if err != nil {
		return nil, snailerrors.NewRepositoryAccessError(r.cmd.WorkingDir(), err)
	}
	return status, nil
}

// ParseStatus parses NUL-separated porcelain v2 output with branch headers.
func ParseStatus(output string) (*Status, error) {
	status := &Status{}
	fields := strings.Split(output, "\x00")

	for i := 0; i < len(fields); i++ {
		entry := fields[i]
		if entry == "" {
			continue
		}

		switch entry[0] {
		case '#':
			parseBranchHeader(status, entry)
		case '1':
			parts := strings.SplitN(entry, " ", 9)
			if len(parts) < 9 {
				return nil, fmt.Errorf("malformed status entry: %q", entry)
			}
			addChange(status, parts[1], parts[8])
		case '2':
			parts := strings.SplitN(entry, " ", 10)
			if len(parts) < 10 {
				return nil, fmt.Errorf("malformed rename entry: %q", entry)
			}
			// The original path follows as its own NUL-terminated field.
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("rename entry missing source path: %q", entry)
			}
			i++
			to, from := parts[9], fields[i]
			status.Renamed = append(status.Renamed, RenamedPath{From: from, To: to})
			xy := parts[1]
			if xy[0] != '.' {
				status.Staged = append(status.Staged, to)
			}
			if len(xy) > 1 && xy[1] == 'M' {
				status.Modified = append(status.Modified, to)
			}
		case 'u':
			parts := strings.SplitN(entry, " ", 11)
			if len(parts) < 11 {
				return nil, fmt.Errorf("malformed unmerged entry: %q", entry)
			}
			status.Conflicted = append(status.Conflicted, parts[10])
		case '?':
			status.Untracked = append(status.Untracked, strings.TrimPrefix(entry, "? "))
		case '!':
			// ignored files are never reported
		default:
			return nil, fmt.Errorf("unknown status entry: %q", entry)
		}
	}
	return status, nil
}

func addChange(status *Status, xy, path string) {
	if len(xy) != 2 {
		return
	}
	index, worktree := xy[0], xy[1]

	if index != '.' {
		status.Staged = append(status.Staged, path)
	}
	if index == 'A' {
		status.Created = append(status.Created, path)
	}
	switch worktree {
	case 'M', 'T':
		status.Modified = append(status.Modified, path)
	case 'A':
		// intent-to-add: tracked in the index with no content yet
		status.Created = append(status.Created, path)
		status.Modified = append(status.Modified, path)
	case 'D':
		status.Deleted = append(status.Deleted, path)
	}
}

func parseBranchHeader(status *Status, line string) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return
	}
	switch parts[1] {
	case "branch.head":
		if parts[2] != "(detached)" {
			status.Current = parts[2]
		}
	case "branch.upstream":
		status.Tracking = parts[2]
	case "branch.ab":
		if len(parts) < 4 {
			return
		}
		status.Ahead, _ = strconv.Atoi(strings.TrimPrefix(parts[2], "+"))
		status.Behind, _ = strconv.Atoi(strings.TrimPrefix(parts[3], "-"))
	}
}
