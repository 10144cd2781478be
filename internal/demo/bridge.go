package demo

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
)

// execCommand is swapped out in tests.
var execCommand = exec.Command

// Bridge manages the socat process that links two pseudo-terminals: the
// one the terminal application opens and the one the feeders write to.
type Bridge struct {
	Link     string
	FeedLink string
}

// NewBridge returns a Bridge with the recording setup's pty names.
func NewBridge() *Bridge {
	return &Bridge{Link: "COM1", FeedLink: "COM1_out"}
}

// Up spawns socat detached. Its output is discarded; the process keeps
// running after devrig exits.
func (b *Bridge) Up() error {
	cmd := execCommand("socat",
		fmt.Sprintf("PTY,link=%s,raw,echo=0", b.Link),
		fmt.Sprintf("PTY,link=%s,raw", b.FeedLink),
	)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting socat: %w", err)
	}
	slog.Debug("socat started", slog.Int("pid", cmd.Process.Pid))

	// Reap the child if it exits while we are still around.
	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Debug("socat exited", slog.Any("error", err))
		}
	}()
	return nil
}

// Down kills any running socat. An unmatched pkill is not an error.
func (b *Bridge) Down() error {
	err := execCommand("pkill", "socat").Run()
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stopping socat: %w", err)
	}
	return nil
}
