package xtoa

import "fmt"

// ---------------------
// ----- Constants -----
// ---------------------

// IntegerBufferSize is large enough for any int64: 19 digits, a sign and the terminator.
const IntegerBufferSize = 21

// ---------------------
// ----- Functions -----
// ---------------------

// FormatInteger writes the decimal representation of v into buf followed by a Terminator and returns the number of
// characters written, the terminator excluded. Nothing is written if buf cannot hold the result.
func FormatInteger(v int64, buf []byte) (int, error) {
	neg := v < 0
	u := magnitude(v)

	n := integerLen(u, neg)
	if len(buf) < n+1 {
		return 0, fmt.Errorf("%w: formatting %d needs %d bytes, got %d", ErrBufferTooSmall, v, n+1, len(buf))
	}

	// Digits come out least significant first.
	i1 := 0
	for {
		buf[i1] = byte(u%10) + '0'
		i1++
		u /= 10
		if u == 0 {
			break
		}
	}
	if neg {
		buf[i1] = '-'
		i1++
	}
	buf[i1] = Terminator

	return Reverse(buf[:i1+1])
}

// ItoA returns the decimal representation of v as a string.
func ItoA(v int64) string {
	var buf [IntegerBufferSize]byte
	n, err := FormatInteger(v, buf[:])
	if err != nil {
		// IntegerBufferSize fits every int64.
		panic(err)
	}
	return string(buf[:n])
}

// magnitude returns |v| widened to uint64, so that math.MinInt64 does not overflow on negation.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// integerLen returns the number of characters needed for the magnitude u, including the sign if neg is set.
func integerLen(u uint64, neg bool) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}
	if neg {
		n++
	}
	return n
}
