package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psrsantos/devrig/cmd/devrig/internal/clierr"
	"github.com/psrsantos/devrig/internal/policy"
	"github.com/psrsantos/devrig/internal/testutil/golden"
)

type stubHistory struct {
	behind, ahead int
	distanceErr   error
	label         string
	labelErr      error
}

func (s stubHistory) Distance(context.Context, string, string) (int, int, error) {
	return s.behind, s.ahead, s.distanceErr
}

func (s stubHistory) FirstParentLabel(context.Context, string) (string, error) {
	return s.label, s.labelErr
}

func TestCheckReportPass(t *testing.T) {
	var b bytes.Buffer
	err := runCheckWith(context.Background(), &b, stubHistory{ahead: 3, label: "main"},
		policy.Options{Source: "feature", Target: "origin/main"})

	require.NoError(t, err)
	golden.Assert(t, "check_pass", b.String())
}

func TestCheckReportNeedsRebase(t *testing.T) {
	var b bytes.Buffer
	err := runCheckWith(context.Background(), &b, stubHistory{behind: 2, ahead: 1},
		policy.Options{Source: "feature", Target: "origin/main"})

	require.Error(t, err)
	assert.Equal(t, 1, clierr.ExitCodeOf(err))
	assert.Contains(t, err.Error(), "needs-rebase")
	golden.Assert(t, "check_needs_rebase", b.String())
}

func TestCheckReportTooManyCommits(t *testing.T) {
	var b bytes.Buffer
	err := runCheckWith(context.Background(), &b, stubHistory{ahead: 20},
		policy.Options{Source: "feature", Target: "origin/main"})

	require.Error(t, err)
	assert.Equal(t, 1, clierr.ExitCodeOf(err))
	assert.Contains(t, err.Error(), "too-many-commits")
	golden.Assert(t, "check_too_many_commits", b.String())
}

func TestCheckReportWrongAncestry(t *testing.T) {
	var b bytes.Buffer
	err := runCheckWith(context.Background(), &b, stubHistory{ahead: 5, label: "feature-x"},
		policy.Options{Source: "feature-y", Target: "origin/main"})

	require.Error(t, err)
	assert.Equal(t, 1, clierr.ExitCodeOf(err))
	assert.Contains(t, err.Error(), "wrong-ancestry")
	golden.Assert(t, "check_wrong_ancestry", b.String())
}

func TestCheckQueryErrorExitCode(t *testing.T) {
	var b bytes.Buffer
	err := runCheckWith(context.Background(), &b, stubHistory{distanceErr: errors.New("exit status 128")},
		policy.Options{Source: "feature", Target: "origin/main"})

	require.Error(t, err)
	assert.Equal(t, 255, clierr.ExitCodeOf(err), "query errors are a different class from policy failures")
}

func TestCheckMissingSourceViaCLI(t *testing.T) {
	cmd := NewRootCmd()
	out := bytes.NewBufferString("")
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"check"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, 255, clierr.ExitCodeOf(err))
	assert.Contains(t, out.String(), "not provided")
}

func TestCheckHelpDeclaresFlags(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"check", "--help"})

	require.NoError(t, cmd.Execute())

	out := b.String()
	for _, flag := range []string{"--srcb", "-s", "--tgtb", "-t"} {
		if !strings.Contains(out, flag) {
			t.Errorf("expected flag %s in check help", flag)
		}
	}
}
