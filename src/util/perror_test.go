package util

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerror(t *testing.T) {
	pe := NewPerror(0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pe.Append(fmt.Errorf("error %d", i))
			pe.Append(nil)
		}(i)
	}
	wg.Wait()
	pe.Stop()

	assert.Equal(t, 10, pe.Len())
	assert.Len(t, pe.Errors(), 10)
}

func TestPerror_errorsIsCopy(t *testing.T) {
	pe := NewPerror(1)
	errA := errors.New("a")
	pe.Append(errA)
	pe.Stop()

	errs := pe.Errors()
	errs[0] = nil
	assert.Equal(t, []error{errA}, pe.Errors())
}
