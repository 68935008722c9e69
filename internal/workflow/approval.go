package workflow

import (
	"context"
	"time"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// approvalPhases is the scripted confirmation sequence played after a
// successful approval. It is presentation only: the server is not polled
// again, each phase is simply held for the configured stagger.
var approvalPhases = []types.ApprovalPhase{
	types.ApprovalPhaseApproved,
	types.ApprovalPhaseQueued,
	types.ApprovalPhaseSyncing,
	types.ApprovalPhaseSynced,
}

const emailNotice = "A visit summary has been emailed to the patient."

var nextSteps = []string{
	"Review pending lab and diagnostic orders",
	"Confirm the recommended follow-up appointment",
	"Return to the patient list for the next consultation",
}

// ApproveNote posts the clinician's approval for the active consultation
// and plays the confirmation sequence. Without an active consultation it
// is a no-op: no request is sent. The trigger is disabled while the
// request is in flight.
func (c *Controller) ApproveNote(ctx context.Context) error {
	c.mu.Lock()
	consultationID := c.session.ActiveConsultationID
	clinicianID := c.session.ClinicianID
	if consultationID == "" || c.approving {
		c.mu.Unlock()
		return nil
	}
	c.approving = true
	c.mu.Unlock()

	c.display.SetApprovalBusy(true)

	result, err := c.backend.ApproveConsultation(ctx, consultationID, &types.ApprovalDecision{
		ClinicianID: clinicianID,
		Approve:     true,
	})
	if err != nil {
		// Re-enable the trigger so the clinician can retry.
		wfErr := types.NewTransportError(types.ErrCodeApprovalFailed, userMessage(err), err)
		c.display.SetApprovalBusy(false)
		c.display.ShowError("Error approving consultation: " + wfErr.Message)
		c.setApproving(false)
		return wfErr
	}

	c.logger.WorkflowEvent("consultation_approved", consultationID, map[string]interface{}{
		"clinician_id": clinicianID,
	})

	for _, phase := range approvalPhases {
		c.display.SetApprovalPhase(phase)
		time.Sleep(c.cfg.ApprovalStaggerDuration())
	}

	c.display.ShowAppointment(ParseAppointmentRecommendation(result.Message))
	time.Sleep(c.cfg.FollowUpDelayDuration())
	c.display.ShowEmailNotice(emailNotice)
	c.display.ShowNextSteps(nextSteps)

	c.setApproving(false)

	// The workflow ends back on the patient list.
	return c.BackToDashboard()
}

func (c *Controller) setApproving(v bool) {
	c.mu.Lock()
	c.approving = v
	c.mu.Unlock()
}
