package workflow

import (
	"time"

	"github.com/israel77-1995/Nocta-system/pkg/interfaces"
)

// ProcessingSteps are the labels of the cosmetic processing indicator
// shown while a consultation is being processed.
var ProcessingSteps = []string{
	"Analyzing transcript",
	"Extracting clinical facts",
	"Generating SOAP note",
	"Suggesting ICD-10 codes",
}

// progressAnimator completes the processing steps at a fixed cadence on
// its own timer. The cadence is deliberately independent of the real
// backend state: the animation is cosmetic and says nothing about actual
// progress.
type progressAnimator struct {
	stop chan struct{}
	done chan struct{}
}

// startProgressAnimation shows the processing indicator and begins
// completing one step per cadence interval.
func startProgressAnimation(display interfaces.Display, cadence time.Duration) *progressAnimator {
	a := &progressAnimator{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	display.ShowProcessing(ProcessingSteps)

	go func() {
		defer close(a.done)
		ticker := time.NewTicker(cadence)
		defer ticker.Stop()

		for step := 0; step < len(ProcessingSteps); step++ {
			select {
			case <-a.stop:
				return
			case <-ticker.C:
				display.CompleteProcessingStep(step)
			}
		}
	}()

	return a
}

// Stop halts the animation. Safe to call more than once.
func (a *progressAnimator) Stop() {
	select {
	case <-a.stop:
	default:
		close(a.stop)
	}
	<-a.done
}
