package ansi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	got := Colorize([]byte("Hello, World!"), Red)
	assert.Equal(t, []byte("\x1b[31mHello, World!\x1b[0m"), got)
}

func TestColorizeDoesNotAliasInput(t *testing.T) {
	msg := []byte("hi")
	got := Colorize(msg, Green)
	got[5] = 'X'
	assert.Equal(t, []byte("hi"), msg)
}

func TestShiftInvisible(t *testing.T) {
	got := ShiftInvisible([]byte("World"))
	want := []byte{'W' + 0x7E, 'o' + 0x7E, 'r' + 0x7E, 'l' + 0x7E, 'd' + 0x7E}
	assert.Equal(t, want, got)
}

func TestPoolHasSevenDistinctColors(t *testing.T) {
	assert.Len(t, Pool, 7)
	for i, a := range Pool {
		for _, b := range Pool[i+1:] {
			assert.False(t, bytes.Equal(a, b), "duplicate color in pool")
		}
	}
}
