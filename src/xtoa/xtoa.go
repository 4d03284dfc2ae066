// xtoa.go implements functions for converting signed integer and floating point numbers into string representations.
// Results are written into caller owned buffers and terminated by a NUL byte, no memory is allocated.

package xtoa

import (
	"fmt"
	"math"
)

// ---------------------
// ----- Constants -----
// ---------------------

// MaxPrecision is the largest number of fraction digits FormatDecimal accepts. The scaled fraction is below
// 10^MaxPrecision, which still fits an int64.
const MaxPrecision = 18

// DecimalBufferSize is large enough for any successful FormatDecimal call: a signed int64 integer part of 20
// characters, the decimal point, a fraction of 20 characters and the terminator. The fraction is sized like a full
// signed int64 so the bound does not depend on which part carries the sign.
const DecimalBufferSize = (IntegerBufferSize - 1) + 1 + (IntegerBufferSize - 1) + 1

// Bounds of the int64 range as floats. The upper bound is exclusive.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// ---------------------
// ----- Functions -----
// ---------------------

// FormatDecimal writes v as <integer>.<fraction> into buf followed by a Terminator and returns the number of
// characters written, the terminator excluded.
//
// The integer part is v truncated toward zero. The fraction is the remainder scaled by 10^precision and truncated, it
// is not padded with leading zeros. The subtraction order for the fraction depends on the sign of the truncated
// integer part, not on the sign of v, so values in (-1, 0) produce a negative fraction: -0.5 at precision 2 is
// written as "0.-50".
//
// Nothing is written if the call fails.
func FormatDecimal(v float64, precision int, buf []byte) (int, error) {
	if precision < 0 || precision > MaxPrecision {
		return 0, fmt.Errorf("%w: %d is not in [0, %d]", ErrPrecisionOutOfRange, precision, MaxPrecision)
	}
	t := math.Trunc(v)
	if !(t >= minInt64Float && t < maxInt64Float) {
		return 0, fmt.Errorf("%w: integer part of %g does not fit int64", ErrIntegerOverflow, v)
	}

	integer := int64(t)
	scale := math.Pow10(precision)
	var decimal int64
	if integer < 0 {
		decimal = int64((float64(integer) - v) * scale)
	} else {
		decimal = int64((v - float64(integer)) * scale)
	}

	n := integerLen(magnitude(integer), integer < 0) + 1 + integerLen(magnitude(decimal), decimal < 0)
	if len(buf) < n+1 {
		return 0, fmt.Errorf("%w: formatting %g needs %d bytes, got %d", ErrBufferTooSmall, v, n+1, len(buf))
	}

	i1, err := FormatInteger(integer, buf)
	if err != nil {
		return 0, err
	}
	buf[i1] = '.'
	i1++
	i2, err := FormatInteger(decimal, buf[i1:])
	if err != nil {
		return 0, err
	}
	return i1 + i2, nil
}

// FtoA returns v formatted with precision fraction digits as a string. See FormatDecimal.
func FtoA(v float64, precision int) (string, error) {
	var buf [DecimalBufferSize]byte
	n, err := FormatDecimal(v, precision, buf[:])
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
