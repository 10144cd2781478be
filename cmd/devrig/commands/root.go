// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/psrsantos/devrig/internal/config"
	"github.com/psrsantos/devrig/internal/gitroot"
)

// NewRootCmd constructs the devrig root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("DEVRIG_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "devrig",
		Short:         "devrig - CI and recording-demo helpers",
		Long:          "devrig bundles the repository's automation scripts: a PR commit-history checker and the serial/typing utilities used to record demos.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().String("config", "", "path to the settings file (default: "+config.FileName+" in the repo root)")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of devrig",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "devrig version %s\n", version)
		},
	})

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewDemoCommand())
	cmd.AddCommand(NewBridgeCommand())

	return cmd
}

// loadConfig resolves the settings file for cmd: an explicit --config
// path, or the default file in the enclosing repo root, or built-in
// defaults outside a repository.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.Load(path)
	}

	root, err := gitroot.Find(".")
	if err != nil {
		// Not in a repo; demos can still run on defaults.
		return config.Default(), nil
	}
	return config.Load(filepath.Join(root, config.FileName))
}
