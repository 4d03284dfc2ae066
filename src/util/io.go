package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Line is a single non-blank line of batch input.
type Line struct {
	Num  int    // 1-based line number in the source.
	Text string // Line content with surrounding whitespace removed.
}

// ---------------------
// ----- Constants -----
// ---------------------

// stdinTimeout is how long ReadSource waits for the first input on stdin.
const stdinTimeout = 500 * time.Millisecond

// ---------------------
// ----- Functions -----
// ---------------------

// ReadSource reads batch input from file or stdin.
// If opt.Src is set the file is read. Else the function waits a short period for the first input on stdin and returns
// an error if none arrives. Once input has started, stdin is read until EOF without a deadline.
func ReadSource(opt Options) ([]Line, error) {
	if len(opt.Src) > 0 {
		f, err := os.Open(opt.Src)
		if err != nil {
			return nil, fmt.Errorf("open source: %w", err)
		}
		defer f.Close()
		return ReadLines(f)
	}
	return readAfterFirstInput(os.Stdin, stdinTimeout)
}

// readAfterFirstInput waits at most timeout for the first byte of r, then reads all lines of r.
func readAfterFirstInput(r io.Reader, timeout time.Duration) ([]Line, error) {
	br := bufio.NewReader(r)
	ready := make(chan error, 1)

	// Concurrently wait for the first input.
	go func() {
		_, err := br.Peek(1)
		ready <- err
	}()

	select {
	case <-time.After(timeout):
		return nil, errors.New("expected input from stdin, got none")
	case err := <-ready:
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}
	return ReadLines(br)
}

// ReadLines returns all non-blank lines of r.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	for num := 1; sc.Scan(); num++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, Line{Num: num, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// OpenOutput returns a writer for opt.Out, creating or truncating the file, or stdout if opt.Out is empty.
// The returned close function must be called when done.
func OpenOutput(opt Options) (*bufio.Writer, func() error, error) {
	if len(opt.Out) == 0 {
		w := bufio.NewWriter(os.Stdout)
		return w, w.Flush, nil
	}
	f, err := os.OpenFile(opt.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	w := bufio.NewWriter(f)
	return w, func() error {
		if err := w.Flush(); err != nil {
			f.Close()
			return fmt.Errorf("flush output: %w", err)
		}
		return f.Close()
	}, nil
}
