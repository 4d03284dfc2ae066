package xtoa

import (
	"bytes"
	"fmt"
)

// Terminator marks the logical end of a formatted result inside a buffer.
const Terminator = 0

// Reverse reverses the bytes in front of the first Terminator in buf and returns their count.
// The buffer is left untouched if it holds no Terminator.
func Reverse(buf []byte) (int, error) {
	n := bytes.IndexByte(buf, Terminator)
	if n < 0 {
		return 0, fmt.Errorf("%w: no terminator in %d byte buffer", ErrInvalidInput, len(buf))
	}
	for i1, i2 := 0, n-1; i1 < i2; i1, i2 = i1+1, i2-1 {
		buf[i1], buf[i2] = buf[i2], buf[i1]
	}
	return n, nil
}
