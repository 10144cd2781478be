package demo

import (
	"context"
	"fmt"
	"time"
)

// Step is one action in a recording script.
type Step interface {
	Run(ctx context.Context, t *Typist) error
}

// TypeLine types its text and submits it with Enter.
type TypeLine string

func (s TypeLine) Run(_ context.Context, t *Typist) error {
	return t.WriteInput(string(s))
}

// TapKey presses a named key a number of times, without Enter.
type TapKey struct {
	Key   Key
	Times int
}

func (s TapKey) Run(_ context.Context, t *Typist) error {
	times := s.Times
	if times == 0 {
		times = 1
	}
	for range times {
		if err := t.PressKey(s.Key); err != nil {
			return err
		}
		t.Sleep(t.TypeSpeed)
	}
	return nil
}

// Pause waits before the next step.
type Pause time.Duration

func (s Pause) Run(_ context.Context, t *Typist) error {
	t.Sleep(time.Duration(s))
	return nil
}

// Script is an ordered step sequence, run front to back. The first
// failing step aborts the rest.
type Script []Step

func (s Script) Run(ctx context.Context, t *Typist) error {
	for i, step := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step.Run(ctx, t); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// SerialSetupScript is the typed sequence of the serial-setup recording:
// three connect attempts, a disconnect, then Esc to leave the command
// bar.
func SerialSetupScript() Script {
	return Script{
		TypeLine("!serial connect COM4 9600"),
		TypeLine("!serial connect 9600"),
		TypeLine("!serial connect COM4"),
		TypeLine("!serial disconnect"),
		Pause(time.Second),
		TapKey{Key: KeyEsc},
	}
}
