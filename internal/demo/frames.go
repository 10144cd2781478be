package demo

import (
	"math/rand/v2"

	"github.com/psrsantos/devrig/internal/ansi"
)

var greeting = []byte("Hello, World!")

// ColorFrame is one line of three randomly colored greetings.
func ColorFrame(rng *rand.Rand) []byte {
	var frame []byte
	for range 3 {
		color := ansi.Pool[rng.IntN(len(ansi.Pool))]
		frame = append(frame, ansi.Colorize(greeting, color)...)
		frame = append(frame, ' ')
	}
	return append(frame, '\r', '\n')
}

// ColorFrames returns a FrameFunc drawing colors from rng.
func ColorFrames(rng *rand.Rand) FrameFunc {
	return func() []byte { return ColorFrame(rng) }
}

// InvisiblesFrame is a greeting whose middle word is shifted out of the
// printable range and whose tail hides behind a NUL byte.
func InvisiblesFrame() []byte {
	frame := []byte("Hello, ")
	frame = append(frame, ansi.ShiftInvisible([]byte("World"))...)
	frame = append(frame, " \x00Again\r\n"...)
	return frame
}
