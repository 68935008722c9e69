package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressAnimation_CompletesEveryStep(t *testing.T) {
	display := newFakeDisplay()

	animator := startProgressAnimation(display, time.Millisecond)
	<-animator.done

	display.mu.Lock()
	defer display.mu.Unlock()
	assert.Equal(t, 1, display.processing)
	assert.Equal(t, []int{0, 1, 2, 3}, display.stepsDone)
}

func TestProgressAnimation_StopHaltsEarly(t *testing.T) {
	display := newFakeDisplay()

	animator := startProgressAnimation(display, time.Hour)
	animator.Stop()

	display.mu.Lock()
	stepsDone := len(display.stepsDone)
	display.mu.Unlock()
	assert.Zero(t, stepsDone)

	// Stop is idempotent.
	animator.Stop()
}
