// SPDX-License-Identifier: MIT

// Package config loads the optional .devrig.yaml settings file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up in the repository root.
const FileName = ".devrig.yaml"

// Duration is a time.Duration that unmarshals from YAML strings like
// "500ms" or "2s", or from a plain number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	case int:
		*d = Duration(time.Duration(v))
		return nil
	default:
		return fmt.Errorf("invalid duration value %v", raw)
	}
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Check configures the commit-history checker.
type Check struct {
	// TargetBranch is the ref PR branches are compared against.
	TargetBranch string `yaml:"target_branch"`

	// CommitLimit is the maximum number of ahead-commits allowed per PR.
	CommitLimit int `yaml:"commit_limit"`

	// RequiredAncestor is the branch PR branches must be cut from.
	RequiredAncestor string `yaml:"required_ancestor"`
}

// Demo configures the recording-demo utilities.
type Demo struct {
	// FeedPort is the serial device the feeders write to. It is the
	// downstream end of the pty bridge.
	FeedPort string `yaml:"feed_port"`

	// BaudRate for the feed port.
	BaudRate int `yaml:"baud_rate"`

	// FrameInterval is the pause between emitted frames.
	FrameInterval Duration `yaml:"frame_interval"`

	// TypeSpeed is the delay between simulated keystrokes.
	TypeSpeed Duration `yaml:"type_speed"`

	// WaitBeforeEnter and WaitAfterEnter pad each typed line.
	WaitBeforeEnter Duration `yaml:"wait_before_enter"`
	WaitAfterEnter  Duration `yaml:"wait_after_enter"`
}

// Config is the full devrig configuration.
type Config struct {
	Check Check `yaml:"check"`
	Demo  Demo  `yaml:"demo"`
}

// Default returns the built-in configuration, matching the recording
// scripts this tool grew out of.
func Default() Config {
	return Config{
		Check: Check{
			TargetBranch:     "origin/main",
			CommitLimit:      15,
			RequiredAncestor: "main",
		},
		Demo: Demo{
			FeedPort:        "COM1_out",
			BaudRate:        9600,
			FrameInterval:   Duration(500 * time.Millisecond),
			TypeSpeed:       Duration(150 * time.Millisecond),
			WaitBeforeEnter: Duration(250 * time.Millisecond),
			WaitAfterEnter:  Duration(500 * time.Millisecond),
		},
	}
}

// Load reads the settings file at path, layering it over Default. A
// missing file is not an error; unreadable or invalid YAML is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
