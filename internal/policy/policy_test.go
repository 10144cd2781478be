package policy

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHistory implements History with canned answers and records which
// queries ran.
type fakeHistory struct {
	behind, ahead int
	distanceErr   error

	label    string
	labelErr error

	distanceCalls int
	labelCalls    int
}

func (f *fakeHistory) Distance(_ context.Context, _, _ string) (int, int, error) {
	f.distanceCalls++
	return f.behind, f.ahead, f.distanceErr
}

func (f *fakeHistory) FirstParentLabel(_ context.Context, _ string) (string, error) {
	f.labelCalls++
	return f.label, f.labelErr
}

func TestCheckNeedsRebase(t *testing.T) {
	h := &fakeHistory{behind: 2, ahead: 1}
	var b bytes.Buffer

	out, err := Check(context.Background(), h, &b, Options{Source: "feature", Target: "origin/main"})
	require.NoError(t, err)

	assert.Equal(t, NeedsRebase, out.Verdict)
	assert.Equal(t, 2, out.Behind)
	assert.Contains(t, b.String(), "2 commits that must be incorporated")
	assert.Contains(t, b.String(), "origin/main")
	assert.Equal(t, 0, h.labelCalls, "ancestry query must not run when behind > 0")
}

func TestCheckNeedsRebaseWinsOverCommitLimit(t *testing.T) {
	// Both conditions hold; behind is checked first.
	h := &fakeHistory{behind: 1, ahead: 40}
	var b bytes.Buffer

	out, err := Check(context.Background(), h, &b, Options{Source: "feature"})
	require.NoError(t, err)
	assert.Equal(t, NeedsRebase, out.Verdict)
}

func TestCheckTooManyCommits(t *testing.T) {
	h := &fakeHistory{behind: 0, ahead: 20}
	var b bytes.Buffer

	out, err := Check(context.Background(), h, &b, Options{Source: "feature"})
	require.NoError(t, err)

	assert.Equal(t, TooManyCommits, out.Verdict)
	assert.Contains(t, b.String(), "20 commits to be added")
	assert.Contains(t, b.String(), "fewer than 16 commits")
	assert.Equal(t, 0, h.labelCalls, "ancestry query must not run over the limit")
}

func TestCheckCommitLimitBoundary(t *testing.T) {
	// Exactly at the limit is still acceptable.
	h := &fakeHistory{behind: 0, ahead: 15, label: "main"}
	var b bytes.Buffer

	out, err := Check(context.Background(), h, &b, Options{Source: "feature"})
	require.NoError(t, err)
	assert.Equal(t, Pass, out.Verdict)
}

func TestCheckPass(t *testing.T) {
	h := &fakeHistory{behind: 0, ahead: 3, label: "main"}
	var b bytes.Buffer

	out, err := Check(context.Background(), h, &b, Options{Source: "feature", Target: "origin/main"})
	require.NoError(t, err)

	assert.Equal(t, Pass, out.Verdict)
	assert.Equal(t, 3, out.Ahead)
	assert.Equal(t, "main", out.Ancestor)
	assert.Contains(t, b.String(), "History is up to date. (3 commits ahead)")
	assert.Contains(t, b.String(), "The branch originates from main.")
}

func TestCheckWrongAncestry(t *testing.T) {
	h := &fakeHistory{behind: 0, ahead: 5, label: "feature-x"}
	var b bytes.Buffer

	out, err := Check(context.Background(), h, &b, Options{Source: "feature-y"})
	require.NoError(t, err)

	assert.Equal(t, WrongAncestry, out.Verdict)
	assert.Equal(t, "feature-x", out.Ancestor)
	assert.Contains(t, b.String(), "originates from `feature-x`")
	assert.Contains(t, b.String(), "resolve `feature-x` first")
}

func TestCheckMissingSource(t *testing.T) {
	h := &fakeHistory{}
	var b bytes.Buffer

	_, err := Check(context.Background(), h, &b, Options{Target: "origin/main"})
	require.ErrorIs(t, err, ErrMissingSource)

	assert.Equal(t, 0, h.distanceCalls, "missing source must short-circuit before any query")
	assert.Contains(t, b.String(), "not provided")
}

func TestCheckDistanceQueryError(t *testing.T) {
	h := &fakeHistory{distanceErr: errors.New("exit status 128")}
	var b bytes.Buffer

	_, err := Check(context.Background(), h, &b, Options{Source: "feature"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "querying commit distance")
	assert.Contains(t, b.String(), "Error while checking history: exit status 128")
	assert.Equal(t, 0, h.labelCalls)
}

func TestCheckAncestryQueryError(t *testing.T) {
	h := &fakeHistory{behind: 0, ahead: 1, labelErr: errors.New("fatal: no tags")}
	var b bytes.Buffer

	_, err := Check(context.Background(), h, &b, Options{Source: "feature"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "querying branch ancestry")
	// The up-to-date line was already printed before the failure.
	assert.Contains(t, b.String(), "History is up to date.")
	assert.Contains(t, b.String(), "Error while checking history: fatal: no tags")
}

func TestCheckCustomOptions(t *testing.T) {
	h := &fakeHistory{behind: 0, ahead: 4, label: "develop"}
	var b bytes.Buffer

	out, err := Check(context.Background(), h, &b, Options{
		Source:           "feature",
		CommitLimit:      3,
		RequiredAncestor: "develop",
	})
	require.NoError(t, err)

	// ahead exceeds the custom limit, so the ancestor never matters.
	assert.Equal(t, TooManyCommits, out.Verdict)

	b.Reset()
	h.ahead = 3
	out, err = Check(context.Background(), h, &b, Options{
		Source:           "feature",
		CommitLimit:      3,
		RequiredAncestor: "develop",
	})
	require.NoError(t, err)
	assert.Equal(t, Pass, out.Verdict)
	assert.Contains(t, b.String(), "originates from develop")
}

func TestVerdictString(t *testing.T) {
	for v, want := range map[Verdict]string{
		Pass:           "pass",
		NeedsRebase:    "needs-rebase",
		TooManyCommits: "too-many-commits",
		WrongAncestry:  "wrong-ancestry",
	} {
		if got := v.String(); got != want {
			t.Errorf("Verdict(%d).String() = %q, want %q", int(v), got, want)
		}
	}
	if !strings.HasPrefix(Verdict(42).String(), "verdict(") {
		t.Errorf("unexpected string for unknown verdict: %s", Verdict(42))
	}
	assert.True(t, Pass.OK())
	assert.False(t, NeedsRebase.OK())
}
