// SPDX-License-Identifier: MIT

// Package policy implements the commit-history hygiene check applied to
// pull-request branches: the branch must be rebased on the target, must
// not carry more than a bounded number of new commits, and must have
// been cut from main.
package policy

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// DefaultCommitLimit is the maximum number of ahead-commits a branch may
// carry before the check asks for the PR to be split.
const DefaultCommitLimit = 15

// DefaultRequiredAncestor is the branch a PR branch must originate from.
const DefaultRequiredAncestor = "main"

// ErrMissingSource is returned when no source branch was supplied.
// It belongs to the usage/query error class, not the policy class.
var ErrMissingSource = errors.New("source branch to verify was not provided")

// Verdict is the categorical outcome of a check, independent of the
// report text shown to the user.
type Verdict int

const (
	Pass Verdict = iota
	NeedsRebase
	TooManyCommits
	WrongAncestry
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case NeedsRebase:
		return "needs-rebase"
	case TooManyCommits:
		return "too-many-commits"
	case WrongAncestry:
		return "wrong-ancestry"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// OK reports whether the verdict is the passing one.
func (v Verdict) OK() bool { return v == Pass }

// History is the commit-history query capability the check runs against.
// The production implementation shells out to git; tests substitute
// fakes returning fixed values.
type History interface {
	// Distance returns the number of commits reachable only from target
	// (behind) and only from source (ahead), relative to their common
	// ancestor.
	Distance(ctx context.Context, target, source string) (behind, ahead int, err error)

	// FirstParentLabel returns the short name of the ref that
	// describes the commit preceding the tip of ref, following first
	// parents only.
	FirstParentLabel(ctx context.Context, ref string) (string, error)
}

// Options configures a single check run.
type Options struct {
	Source string
	Target string

	// CommitLimit bounds the allowed ahead count. Zero means
	// DefaultCommitLimit.
	CommitLimit int

	// RequiredAncestor is the branch the source must originate from.
	// Empty means DefaultRequiredAncestor.
	RequiredAncestor string
}

func (o Options) commitLimit() int {
	if o.CommitLimit == 0 {
		return DefaultCommitLimit
	}
	return o.CommitLimit
}

func (o Options) requiredAncestor() string {
	if o.RequiredAncestor == "" {
		return DefaultRequiredAncestor
	}
	return o.RequiredAncestor
}

// Outcome is the result of a completed check. It is only produced when
// both history queries (or as many of them as the decision needed)
// succeeded.
type Outcome struct {
	Verdict Verdict

	// Behind and Ahead are the commit distances that drove the verdict.
	Behind int
	Ahead  int

	// Ancestor is the resolved first-parent ancestor label. Empty when
	// the decision was made before the ancestry query ran.
	Ancestor string
}

// Check runs the commit-history policy against h and writes the
// human-readable report to w. It performs at most two history queries
// and never retries; the first failed query aborts the check with an
// error. Exactly one verdict is produced per call.
//
// Decision order: a nonzero behind count wins over everything, then the
// commit limit, then ancestry.
func Check(ctx context.Context, h History, w io.Writer, opts Options) (Outcome, error) {
	if opts.Source == "" {
		fmt.Fprintf(w, "\nSource branch to verify was not provided.\n")
		return Outcome{}, ErrMissingSource
	}

	behind, ahead, err := h.Distance(ctx, opts.Target, opts.Source)
	if err != nil {
		fmt.Fprintf(w, "\nError while checking history: %v\n", err)
		return Outcome{}, fmt.Errorf("querying commit distance: %w", err)
	}

	out := Outcome{Behind: behind, Ahead: ahead}

	if behind > 0 {
		fmt.Fprintf(w, "\nThere are %d commits that must be incorporated into the PR by rebasing onto %s.\n", behind, opts.Target)
		out.Verdict = NeedsRebase
		return out, nil
	}

	limit := opts.commitLimit()
	if ahead > limit {
		fmt.Fprintf(w, "\nThere are %d commits to be added; split the PR so that it contains fewer than %d commits.\n", ahead, limit+1)
		out.Verdict = TooManyCommits
		return out, nil
	}

	fmt.Fprintf(w, "\nHistory is up to date. (%d commits ahead)\n", ahead)

	label, err := h.FirstParentLabel(ctx, opts.Source)
	if err != nil {
		fmt.Fprintf(w, "\nError while checking history: %v\n", err)
		return Outcome{}, fmt.Errorf("querying branch ancestry: %w", err)
	}
	out.Ancestor = label

	if want := opts.requiredAncestor(); label != want {
		fmt.Fprintf(w, "\nThe branch originates from `%s`, resolve `%s` first. (The branch must originate from %s.)\n", label, label, want)
		out.Verdict = WrongAncestry
		return out, nil
	}

	fmt.Fprintf(w, "\nThe branch originates from %s.\n", opts.requiredAncestor())
	out.Verdict = Pass
	return out, nil
}
