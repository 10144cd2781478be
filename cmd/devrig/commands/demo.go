// SPDX-License-Identifier: MIT

package commands

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/psrsantos/devrig/internal/config"
	"github.com/psrsantos/devrig/internal/demo"
)

// NewDemoCommand groups the recording-demo utilities.
func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Utilities used while recording demo videos",
	}

	cmd.AddCommand(newDemoColorsCommand())
	cmd.AddCommand(newDemoInvisiblesCommand())
	cmd.AddCommand(newDemoSerialSetupCommand())

	return cmd
}

func addFeederFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("duration", 0, "how long to feed frames (0 = until interrupted)")
	cmd.Flags().String("port", "", "serial port to write to (default from config: COM1_out)")
}

func feederFor(cmd *cobra.Command, cfg config.Config, frame demo.FrameFunc) *demo.Feeder {
	port, _ := cmd.Flags().GetString("port")
	if port == "" {
		port = cfg.Demo.FeedPort
	}
	return &demo.Feeder{
		Port:     port,
		Baud:     cfg.Demo.BaudRate,
		Interval: cfg.Demo.FrameInterval.Std(),
		Frame:    frame,
	}
}

func newDemoColorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Feed randomly colored greetings to the serial port",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			duration, _ := cmd.Flags().GetDuration("duration")

			rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
			return feederFor(cmd, cfg, demo.ColorFrames(rng)).Run(cmd.Context(), duration)
		},
	}
	addFeederFlags(cmd)
	return cmd
}

func newDemoInvisiblesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invisibles",
		Short: "Feed greetings with unrenderable and NUL-hidden characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			duration, _ := cmd.Flags().GetDuration("duration")

			return feederFor(cmd, cfg, demo.InvisiblesFrame).Run(cmd.Context(), duration)
		},
	}
	addFeederFlags(cmd)
	return cmd
}

func newDemoSerialSetupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serial-setup",
		Short: "Type the scripted serial connect/disconnect sequence",
		Long: "Simulates typing the `!serial connect` and `!serial disconnect` command " +
			"sequence into the focused terminal, at recording pace. Focus the target " +
			"window before running this.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			kb, err := demo.NewSystemKeyboard()
			if err != nil {
				return err
			}
			typist := demo.NewTypist(kb,
				cfg.Demo.TypeSpeed.Std(),
				cfg.Demo.WaitBeforeEnter.Std(),
				cfg.Demo.WaitAfterEnter.Std(),
			)
			return demo.SerialSetupScript().Run(cmd.Context(), typist)
		},
	}
}
