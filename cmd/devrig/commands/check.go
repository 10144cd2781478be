// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/psrsantos/devrig/cmd/devrig/internal/clierr"
	"github.com/psrsantos/devrig/internal/githist"
	"github.com/psrsantos/devrig/internal/gitroot"
	"github.com/psrsantos/devrig/internal/policy"
)

// NewCheckCommand returns the `devrig check` command, the CI gate that
// verifies a PR branch's commit history.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the commit history of a PR branch",
		Long: "Checks that the source branch is rebased on the target, carries no more " +
			"new commits than the configured limit, and was cut from main. " +
			"Exits 0 on pass, 1 on a policy violation, and 255 when the check itself could not run.",
		RunE: runCheck,
	}

	// The source flag is declared optional here on purpose; its absence
	// is rejected after parsing with the cannot-run exit class, which
	// downstream CI tooling relies on.
	cmd.Flags().StringP("srcb", "s", "", "source branch of the comparison")
	cmd.Flags().StringP("tgtb", "t", "", "target branch of the comparison (default from config: origin/main)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return clierr.Wrap(-1, "loading configuration", err)
	}

	source, _ := cmd.Flags().GetString("srcb")
	target, _ := cmd.Flags().GetString("tgtb")
	if target == "" {
		target = cfg.Check.TargetBranch
	}

	// Outside a worktree git itself produces the error, so a failed
	// root lookup just falls back to the working directory.
	dir, err := gitroot.Find(".")
	if err != nil {
		dir = ""
	}

	opts := policy.Options{
		Source:           source,
		Target:           target,
		CommitLimit:      cfg.Check.CommitLimit,
		RequiredAncestor: cfg.Check.RequiredAncestor,
	}
	return runCheckWith(cmd.Context(), cmd.OutOrStdout(), githist.NewCLI(dir), opts)
}

// runCheckWith applies the policy and converts the outcome to the
// process exit contract: 0 pass, 1 policy failure, 255 cannot-run.
func runCheckWith(ctx context.Context, w io.Writer, h policy.History, opts policy.Options) error {
	outcome, err := policy.Check(ctx, h, w, opts)
	if err != nil {
		return clierr.Wrap(-1, "commit history check could not run", err)
	}
	if !outcome.Verdict.OK() {
		return clierr.Newf(1, "commit history check failed: %s", outcome.Verdict)
	}
	return nil
}
