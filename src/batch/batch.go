// batch.go formats many input values in parallel. Every worker owns its own output buffer, results are stored by
// input index so the output order equals the input order.

package batch

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"dtostr/src/util"
	"dtostr/src/xtoa"

	"github.com/iver-wharf/wharf-core/v2/pkg/logger"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Mode selects the formatter applied to every input value.
type Mode int

// Result is the outcome of formatting a single input line.
type Result struct {
	Line util.Line // Input line.
	Text string    // Formatted value. Empty if Err is set.
	Err  error     // Parse or format error.
}

// LineError wraps an error with the input line it occurred on.
type LineError struct {
	Num  int    // 1-based line number in the source.
	Text string // Line content that failed.
	Err  error
}

// ---------------------
// ----- Constants -----
// ---------------------

// Formatting modes.
const (
	Decimal Mode = iota // Parse as float, format with xtoa.FormatDecimal.
	Integer             // Parse as int64, format with xtoa.FormatInteger.
)

var log = logger.NewScoped("BATCH")

// ---------------------
// ----- Functions -----
// ---------------------

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Num, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

func (m Mode) String() string {
	switch m {
	case Decimal:
		return "decimal"
	case Integer:
		return "integer"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Run formats lines using opt.Threads workers. A failing line does not stop the batch, its error is stored in the
// line's Result and also returned, wrapped in a LineError, in the error slice. The slice holds the failures only, in
// the order the workers reported them, so callers can report errors without scanning all results. Run returns
// ctx.Err() if the context is cancelled before all lines have been handed out.
func Run(ctx context.Context, lines []util.Line, opt util.Options, mode Mode) ([]Result, []error, error) {
	if err := opt.Validate(); err != nil {
		return nil, nil, err
	}
	log.Debug().
		WithInt("lines", len(lines)).
		WithInt("threads", opt.Threads).
		WithStringer("mode", mode).
		Message("Starting batch.")

	results := make([]Result, len(lines))
	pe := util.NewPerror(0)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i1 := 0; i1 < opt.Threads; i1++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]byte, opt.BufferSize)
			for idx := range jobs {
				line := lines[idx]
				text, err := formatLine(line.Text, opt.Precision, mode, buf)
				results[idx] = Result{Line: line, Text: text, Err: err}
				if err != nil {
					pe.Append(LineError{Num: line.Num, Text: line.Text, Err: err})
				}
			}
		}()
	}

	var ctxErr error
feed:
	for i1 := range lines {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- i1:
		}
	}
	close(jobs)
	wg.Wait()
	pe.Stop()

	errs := pe.Errors()
	if ctxErr != nil {
		log.Warn().WithError(ctxErr).Message("Batch cancelled.")
		return nil, errs, ctxErr
	}
	log.Debug().
		WithInt("lines", len(lines)).
		WithInt("failed", len(errs)).
		Message("Batch done.")
	return results, errs, nil
}

// formatLine parses s according to mode and formats it into buf.
func formatLine(s string, precision int, mode Mode, buf []byte) (string, error) {
	var n int
	switch mode {
	case Integer:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return "", fmt.Errorf("parse integer: %w", err)
		}
		if n, err = xtoa.FormatInteger(v, buf); err != nil {
			return "", err
		}
	case Decimal:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", fmt.Errorf("parse float: %w", err)
		}
		if n, err = xtoa.FormatDecimal(v, precision, buf); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown mode: %s", mode)
	}
	return string(buf[:n]), nil
}
