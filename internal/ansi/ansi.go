// Package ansi holds the raw escape sequences the demo feeders write to
// the serial channel. The bytes go over the wire untouched; nothing here
// adapts to the local terminal.
package ansi

// Color is an SGR foreground color sequence.
type Color []byte

var (
	Red     = Color("\x1b[31m")
	Green   = Color("\x1b[32m")
	Yellow  = Color("\x1b[33m")
	Blue    = Color("\x1b[34m")
	Magenta = Color("\x1b[35m")
	Cyan    = Color("\x1b[36m")
	Gray    = Color("\x1b[37m")

	// Reset clears all attributes.
	Reset = Color("\x1b[0m")
)

// Pool is the set of colors the color demo draws from.
var Pool = []Color{Red, Green, Yellow, Blue, Magenta, Cyan, Gray}

// Colorize wraps msg in the color sequence and a reset.
func Colorize(msg []byte, c Color) []byte {
	out := make([]byte, 0, len(c)+len(msg)+len(Reset))
	out = append(out, c...)
	out = append(out, msg...)
	out = append(out, Reset...)
	return out
}

// ShiftInvisible pushes each byte of msg out of the printable ASCII
// range by adding 0x7E, producing glyphs most terminals cannot render.
func ShiftInvisible(msg []byte) []byte {
	out := make([]byte, len(msg))
	for i, b := range msg {
		out[i] = b + 0x7E
	}
	return out
}
