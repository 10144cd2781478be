package demo

import (
	"fmt"
	"runtime"
	"time"
	"unicode"

	"github.com/micmonay/keybd_event"
)

// Key names the few non-character keys the demos press.
type Key int

const (
	KeyEnter Key = iota
	KeyEsc
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	default:
		return fmt.Sprintf("key(%d)", int(k))
	}
}

// Keyboard injects keystrokes into the focused application.
type Keyboard interface {
	// Tap types a single character.
	Tap(r rune) error
	// Press presses and releases a named key.
	Press(k Key) error
}

// SystemKeyboard injects real keystrokes via the OS input layer.
type SystemKeyboard struct {
	kb keybd_event.KeyBonding
}

// NewSystemKeyboard prepares keyboard injection. On Linux the virtual
// device needs a moment to register before the first keystroke.
func NewSystemKeyboard() (*SystemKeyboard, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("preparing keyboard injection: %w", err)
	}
	if runtime.GOOS == "linux" {
		time.Sleep(2 * time.Second)
	}
	return &SystemKeyboard{kb: kb}, nil
}

var letterCodes = map[rune]int{
	'a': keybd_event.VK_A, 'b': keybd_event.VK_B, 'c': keybd_event.VK_C,
	'd': keybd_event.VK_D, 'e': keybd_event.VK_E, 'f': keybd_event.VK_F,
	'g': keybd_event.VK_G, 'h': keybd_event.VK_H, 'i': keybd_event.VK_I,
	'j': keybd_event.VK_J, 'k': keybd_event.VK_K, 'l': keybd_event.VK_L,
	'm': keybd_event.VK_M, 'n': keybd_event.VK_N, 'o': keybd_event.VK_O,
	'p': keybd_event.VK_P, 'q': keybd_event.VK_Q, 'r': keybd_event.VK_R,
	's': keybd_event.VK_S, 't': keybd_event.VK_T, 'u': keybd_event.VK_U,
	'v': keybd_event.VK_V, 'w': keybd_event.VK_W, 'x': keybd_event.VK_X,
	'y': keybd_event.VK_Y, 'z': keybd_event.VK_Z,
}

var digitCodes = map[rune]int{
	'0': keybd_event.VK_0, '1': keybd_event.VK_1, '2': keybd_event.VK_2,
	'3': keybd_event.VK_3, '4': keybd_event.VK_4, '5': keybd_event.VK_5,
	'6': keybd_event.VK_6, '7': keybd_event.VK_7, '8': keybd_event.VK_8,
	'9': keybd_event.VK_9,
}

// keyCodeFor maps the characters the demo scripts actually type.
func keyCodeFor(r rune) (code int, shift bool, err error) {
	switch {
	case r == ' ':
		return keybd_event.VK_SPACE, false, nil
	case r == '!':
		return keybd_event.VK_1, true, nil
	case unicode.IsUpper(r):
		code, ok := letterCodes[unicode.ToLower(r)]
		if !ok {
			return 0, false, fmt.Errorf("no key code for %q", r)
		}
		return code, true, nil
	default:
		if code, ok := letterCodes[r]; ok {
			return code, false, nil
		}
		if code, ok := digitCodes[r]; ok {
			return code, false, nil
		}
		return 0, false, fmt.Errorf("no key code for %q", r)
	}
}

func (s *SystemKeyboard) Tap(r rune) error {
	code, shift, err := keyCodeFor(r)
	if err != nil {
		return err
	}
	s.kb.SetKeys(code)
	s.kb.HasSHIFT(shift)
	if err := s.kb.Launching(); err != nil {
		return fmt.Errorf("typing %q: %w", r, err)
	}
	return nil
}

func (s *SystemKeyboard) Press(k Key) error {
	switch k {
	case KeyEnter:
		s.kb.SetKeys(keybd_event.VK_ENTER)
	case KeyEsc:
		s.kb.SetKeys(keybd_event.VK_ESC)
	default:
		return fmt.Errorf("unknown key %v", k)
	}
	s.kb.HasSHIFT(false)
	if err := s.kb.Launching(); err != nil {
		return fmt.Errorf("pressing %v: %w", k, err)
	}
	return nil
}
