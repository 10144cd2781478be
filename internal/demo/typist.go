package demo

import (
	"fmt"
	"time"
)

// Typist types scripted input at a human-looking pace.
type Typist struct {
	kb Keyboard

	TypeSpeed       time.Duration
	WaitBeforeEnter time.Duration
	WaitAfterEnter  time.Duration

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewTypist returns a Typist over kb with the given pacing.
func NewTypist(kb Keyboard, typeSpeed, waitBeforeEnter, waitAfterEnter time.Duration) *Typist {
	return &Typist{
		kb:              kb,
		TypeSpeed:       typeSpeed,
		WaitBeforeEnter: waitBeforeEnter,
		WaitAfterEnter:  waitAfterEnter,
		sleep:           time.Sleep,
	}
}

// WriteInput types msg character by character, then submits it with
// Enter.
func (t *Typist) WriteInput(msg string) error {
	for _, r := range msg {
		if err := t.kb.Tap(r); err != nil {
			return fmt.Errorf("typing %q: %w", msg, err)
		}
		t.sleep(t.TypeSpeed)
	}
	return t.submit()
}

// RepeatKey presses key the given number of times, then submits with
// Enter.
func (t *Typist) RepeatKey(key Key, times int) error {
	for range times {
		if err := t.kb.Press(key); err != nil {
			return err
		}
		t.sleep(t.TypeSpeed)
	}
	return t.submit()
}

// PressKey presses a single key with no Enter and no padding.
func (t *Typist) PressKey(key Key) error {
	return t.kb.Press(key)
}

// Sleep pauses the script for d.
func (t *Typist) Sleep(d time.Duration) {
	t.sleep(d)
}

func (t *Typist) submit() error {
	t.sleep(t.WaitBeforeEnter)
	if err := t.kb.Press(KeyEnter); err != nil {
		return err
	}
	t.sleep(t.WaitAfterEnter)
	return nil
}
