package util

import "sync"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Perror listens for errors reported from parallel worker goroutines and keeps them until the job is done.
type Perror struct {
	listen     chan error    // Channel for receiving errors from workers.
	stop       chan struct{} // Closed to make the listener stop.
	done       chan struct{} // Closed by the listener when it has stopped.
	errors     []error       // Buffer of received errors.
	sync.Mutex               // For synchronising writes and reads.
}

// ----------------------
// ----- Constants ------
// ----------------------

// defaultBufferSize defines the fallback buffer size of the error array.
const defaultBufferSize = 16

// ---------------------
// ----- functions -----
// ---------------------

// NewPerror returns a running error listener with n pre-allocated slots for errors.
func NewPerror(n int) *Perror {
	if n < 1 {
		n = defaultBufferSize
	}
	pe := Perror{
		listen: make(chan error),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
		errors: make([]error, 0, n),
	}
	go pe.run()
	return &pe
}

// run collects errors from the listen channel until Stop is called.
func (pe *Perror) run() {
	defer close(pe.done)
	for {
		select {
		case err := <-pe.listen:
			pe.Lock()
			pe.errors = append(pe.errors, err)
			pe.Unlock()
		case <-pe.stop:
			return
		}
	}
}

// Append sends err to the listener. <nil> errors are ignored. Append must not be called after Stop.
func (pe *Perror) Append(err error) {
	if err != nil {
		pe.listen <- err
	}
}

// Stop stops the listener and waits for it to exit. Every Append that returned before Stop is recorded.
func (pe *Perror) Stop() {
	close(pe.stop)
	<-pe.done
}

// Len returns the number of buffered errors.
func (pe *Perror) Len() int {
	pe.Lock()
	defer pe.Unlock()
	return len(pe.errors)
}

// Errors returns a copy of the buffered errors in the order they were received.
func (pe *Perror) Errors() []error {
	pe.Lock()
	defer pe.Unlock()
	errs := make([]error, len(pe.errors))
	copy(errs, pe.errors)
	return errs
}
