// SPDX-License-Identifier: MIT

// Package githist answers commit-history questions by shelling out to
// the git CLI. It implements policy.History.
package githist

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// Runner executes a git invocation and returns its stdout. Tests
// substitute a fake; the default runs the real binary.
type Runner interface {
	Output(ctx context.Context, dir string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	slog.Debug("running git", slog.Any("args", args), slog.String("dir", dir))
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return out, nil
}

// CLI queries history through the git binary, with the working directory
// pinned to the repository root.
type CLI struct {
	dir string
	run Runner
}

// NewCLI returns a CLI rooted at dir. An empty dir means the process's
// working directory.
func NewCLI(dir string) *CLI {
	return &CLI{dir: dir, run: execRunner{}}
}

// NewCLIWithRunner is NewCLI with an injected Runner.
func NewCLIWithRunner(dir string, run Runner) *CLI {
	return &CLI{dir: dir, run: run}
}

// Distance returns the (behind, ahead) commit counts between target and
// source, measured from their common ancestor.
//
// git prints one line of two tab-separated counts, left (target-only)
// first. Anything else is a malformed-output error.
func (c *CLI) Distance(ctx context.Context, target, source string) (behind, ahead int, err error) {
	out, err := c.run.Output(ctx, c.dir, "rev-list", "--count", "--left-right", target+"..."+source)
	if err != nil {
		return 0, 0, err
	}

	line := strings.TrimSpace(string(out))
	fields := strings.Split(line, "\t")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("malformed rev-list count output %q", line)
	}

	behind, err = strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed rev-list count output %q: %v", line, err)
	}
	ahead, err = strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed rev-list count output %q: %v", line, err)
	}
	return behind, ahead, nil
}

// FirstParentLabel describes the commit preceding the tip of ref,
// following the first-parent chain only, and returns the last segment
// of the resulting ref path. For a branch cut from main this is "main".
func (c *CLI) FirstParentLabel(ctx context.Context, ref string) (string, error) {
	out, err := c.run.Output(ctx, c.dir, "describe", "--all", "--first-parent", "--abbrev=0", ref+"~1")
	if err != nil {
		return "", err
	}

	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", fmt.Errorf("empty describe output for %s~1", ref)
	}
	segs := strings.Split(path, "/")
	return strings.TrimSpace(segs[len(segs)-1]), nil
}
