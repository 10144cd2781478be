// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psrsantos/devrig/internal/demo"
)

// NewBridgeCommand manages the socat pty bridge the demos write
// through.
func NewBridgeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Manage the virtual serial-port bridge",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Spawn the socat bridge between COM1 and COM1_out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := demo.NewBridge().Up(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "bridge up")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Kill any running socat bridge",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := demo.NewBridge().Down(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "bridge down")
			return nil
		},
	})

	return cmd
}
