// Package demo drives the recording demos: scripted serial output and
// simulated typing. The serial port, the pty bridge and the keyboard
// injection mechanism are external collaborators; this package only
// feeds them.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.bug.st/serial"
)

// FrameFunc produces the next frame to write to the feed port.
type FrameFunc func() []byte

// PortOpener opens the serial feed port. Tests substitute an in-memory
// writer.
type PortOpener func(name string, baud int) (io.WriteCloser, error)

// OpenSerial opens a real serial port at 8N1.
func OpenSerial(name string, baud int) (io.WriteCloser, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return port, nil
}

// Feeder writes frames to the feed port on a fixed cadence.
type Feeder struct {
	Port     string
	Baud     int
	Interval time.Duration
	Frame    FrameFunc

	// Open defaults to OpenSerial when nil.
	Open PortOpener
}

// Run emits frames every Interval until the duration elapses or ctx is
// cancelled. A non-positive duration runs until cancellation.
func (f *Feeder) Run(ctx context.Context, duration time.Duration) error {
	open := f.Open
	if open == nil {
		open = OpenSerial
	}

	w, err := open(f.Port, f.Baud)
	if err != nil {
		return err
	}
	defer w.Close()

	var frames int
	if duration > 0 {
		frames = int(duration / f.Interval)
		if frames < 1 {
			frames = 1
		}
	}

	ticker := time.NewTicker(f.Interval)
	defer ticker.Stop()

	for sent := 0; frames == 0 || sent < frames; sent++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		frame := f.Frame()
		if _, err := w.Write(frame); err != nil {
			return fmt.Errorf("writing to %s: %w", f.Port, err)
		}
		slog.Debug("frame written", slog.String("port", f.Port), slog.Int("bytes", len(frame)))
	}
	return nil
}
