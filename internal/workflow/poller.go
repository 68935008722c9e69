package workflow

import (
	"context"
	"time"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// startPolling begins the bounded status poll loop for a consultation.
// Any previous poll task is cancelled first: starting a new workflow
// replaces the old one outright.
func (c *Controller) startPolling(consultationID string) {
	c.stopPolling()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c.mu.Lock()
	c.cancelPoll = cancel
	c.pollDone = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		c.runPollLoop(ctx, consultationID)
	}()
}

// stopPolling cancels the live poll task, if any, and waits for it to
// wind down so no poll fires after navigation away.
func (c *Controller) stopPolling() {
	c.mu.Lock()
	cancel := c.cancelPoll
	done := c.pollDone
	c.cancelPoll = nil
	c.pollDone = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// runPollLoop fetches consultation status once per interval until a
// terminal state, a transport error or the attempt cap. No two polls for
// the same consultation ever run concurrently: each attempt schedules
// the next only after it completes.
func (c *Controller) runPollLoop(ctx context.Context, consultationID string) {
	log := c.logger.WithConsultationID(consultationID)
	attempts := 0

	for {
		status, err := c.backend.GetConsultationStatus(ctx, consultationID)
		c.metrics.RecordPollAttempt()

		if ctx.Err() != nil {
			return
		}

		// A transport error during polling is fail-fast: surface it and
		// stop, exactly as the timeout path does.
		if err != nil {
			wfErr := types.NewTransportError(types.ErrCodeStatusFetchFailed, userMessage(err), err)
			log.WithError(wfErr).Warn("Status poll failed")
			c.failWorkflow("Error: "+wfErr.Message, types.ActionBackToConsultation)
			return
		}

		log.WithField("state", status.State).Debug("Poll attempt completed")

		if status.State.IsTerminalSuccess() {
			c.finishWorkflow(ctx, consultationID)
			return
		}

		if status.State.IsTerminalFailure() {
			message := status.ErrorMessage
			if message == "" {
				message = types.MsgProcessingFailed
			}
			wfErr := types.NewBackendError(types.ErrCodeProcessingFailed, message)
			log.WithField("state", status.State).WithError(wfErr).Warn("Consultation processing failed")
			c.failWorkflow("Error: "+wfErr.Message, types.ActionBackToConsultation)
			return
		}

		attempts++
		if attempts >= c.cfg.PollMaxAttempts {
			wfErr := types.NewTimeoutError(types.ErrCodePollTimeout, types.MsgPollTimeout)
			log.WithError(wfErr).Warn("Poll attempt cap reached")
			c.failWorkflow("Error: "+wfErr.Message, types.ActionBackToConsultation)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.cfg.PollIntervalDuration()):
		}
	}
}

// finishWorkflow fetches the full consultation and renders the results.
func (c *Controller) finishWorkflow(ctx context.Context, consultationID string) {
	consultation, err := c.backend.GetConsultation(ctx, consultationID)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		wfErr := types.NewTransportError(types.ErrCodeDetailFetchFailed, userMessage(err), err)
		c.logger.WithConsultationID(consultationID).WithError(wfErr).Error("Failed to load consultation details")
		c.failWorkflow("Error loading results: "+wfErr.Message, types.ActionBackToConsultation)
		return
	}

	c.stopAnimator()
	c.metrics.RecordWorkflowOutcome(true)
	c.logger.WorkflowEvent("consultation_ready", consultationID, nil)
	c.display.RenderResults(BuildResultView(consultation))
}
