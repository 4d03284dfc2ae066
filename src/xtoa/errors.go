package xtoa

import "errors"

// ---------------------
// ----- Constants -----
// ---------------------

// Errors returned by the formatting functions. They are wrapped with details
// about the failing call and should be matched using errors.Is.
var (
	// ErrBufferTooSmall is returned when the formatted result and its
	// terminator do not fit in the output buffer.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrPrecisionOutOfRange is returned when the requested number of fraction
	// digits is negative or larger than MaxPrecision.
	ErrPrecisionOutOfRange = errors.New("precision out of range")

	// ErrIntegerOverflow is returned when the integer part of a float cannot be
	// represented as an int64. NaN and infinities are reported the same way.
	ErrIntegerOverflow = errors.New("integer overflow")

	// ErrInvalidInput is returned by Reverse when the buffer holds no
	// terminator.
	ErrInvalidInput = errors.New("invalid input")
)
