package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// advanceToResults drives login -> history -> open a reviewable record,
// leaving an active consultation selected.
func advanceToResults(t *testing.T, c *Controller, backend *MockBackend) {
	t.Helper()
	ctx := context.Background()

	backend.On("ListPatients", mock.Anything).Return([]*types.Patient{testPatient}, nil)
	backend.On("GetPatientHistory", mock.Anything, "patient-1").
		Return([]*types.Consultation{readyConsultation("cons-9")}, nil)
	backend.On("GetConsultation", mock.Anything, "cons-9").
		Return(readyConsultation("cons-9"), nil)

	assert.NoError(t, c.Login(ctx, "clin-1"))
	assert.NoError(t, c.OpenHistory(ctx, "patient-1", "Thandi Nkosi"))
	assert.NoError(t, c.OpenHistoryRecord(ctx, "cons-9"))
	assert.Equal(t, types.ScreenResults, c.CurrentScreen())
	assert.Equal(t, "cons-9", c.Session().ActiveConsultationID)
}

func TestApproveNote_Success(t *testing.T) {
	controller, backend, display := setupController()
	advanceToResults(t, controller, backend)

	backend.On("ApproveConsultation", mock.Anything, "cons-9", mock.MatchedBy(func(d *types.ApprovalDecision) bool {
		return d.Approve && d.ClinicianID == "clin-1"
	})).Return(&types.ApprovalResult{
		Approved: true,
		Message:  "TIMEFRAME: 1 week\nREASON: Blood pressure recheck\nPRIORITY: Urgent",
	}, nil)

	assert.NoError(t, controller.ApproveNote(context.Background()))

	display.mu.Lock()
	defer display.mu.Unlock()

	assert.Equal(t, []types.ApprovalPhase{
		types.ApprovalPhaseApproved,
		types.ApprovalPhaseQueued,
		types.ApprovalPhaseSyncing,
		types.ApprovalPhaseSynced,
	}, display.phases)

	assert.Len(t, display.appointments, 1)
	assert.Equal(t, "1 week", display.appointments[0].Timeframe)
	assert.Equal(t, "Blood pressure recheck", display.appointments[0].Reason)
	assert.Equal(t, "Urgent", display.appointments[0].Priority)

	assert.Equal(t, []string{emailNotice}, display.emails)
	assert.Len(t, display.nextSteps, 1)

	// The sequence ends back on the dashboard with the session cleared
	// down to the clinician.
	assert.Equal(t, types.ScreenDashboard, controller.CurrentScreen())
	session := controller.Session()
	assert.Equal(t, "clin-1", session.ClinicianID)
	assert.Empty(t, session.PatientID)
	assert.Empty(t, session.ActiveConsultationID)
}

func TestApproveNote_UnlabeledMessageUsesDefaults(t *testing.T) {
	controller, backend, display := setupController()
	advanceToResults(t, controller, backend)

	backend.On("ApproveConsultation", mock.Anything, "cons-9", mock.Anything).
		Return(&types.ApprovalResult{Approved: true, Message: "Consultation approved"}, nil)

	assert.NoError(t, controller.ApproveNote(context.Background()))

	display.mu.Lock()
	defer display.mu.Unlock()
	assert.Len(t, display.appointments, 1)
	assert.Equal(t, types.DefaultAppointmentTimeframe, display.appointments[0].Timeframe)
	assert.Equal(t, types.DefaultAppointmentReason, display.appointments[0].Reason)
	assert.Equal(t, types.DefaultAppointmentPriority, display.appointments[0].Priority)
}

func TestApproveNote_FailureReEnablesTrigger(t *testing.T) {
	controller, backend, display := setupController()
	advanceToResults(t, controller, backend)

	backend.On("ApproveConsultation", mock.Anything, "cons-9", mock.Anything).
		Return(nil, types.NewTransportError(types.ErrCodeHTTPError, "Ledger unavailable", nil)).Once()

	err := controller.ApproveNote(context.Background())
	assert.Error(t, err)
	wfErr, ok := err.(*types.WorkflowError)
	assert.True(t, ok)
	assert.Equal(t, types.ErrCodeApprovalFailed, wfErr.Code)
	assert.Contains(t, display.waitError(t), "Ledger unavailable")

	display.mu.Lock()
	assert.Equal(t, []bool{true, false}, display.busyStates)
	assert.Empty(t, display.phases)
	display.mu.Unlock()

	// Still on the results screen with the record selected: retry works.
	assert.Equal(t, types.ScreenResults, controller.CurrentScreen())
	assert.Equal(t, "cons-9", controller.Session().ActiveConsultationID)

	backend.On("ApproveConsultation", mock.Anything, "cons-9", mock.Anything).
		Return(&types.ApprovalResult{Approved: true, Message: ""}, nil).Once()
	assert.NoError(t, controller.ApproveNote(context.Background()))
	backend.AssertNumberOfCalls(t, "ApproveConsultation", 2)
}

func TestApproveNote_NoActiveConsultationIsNoOp(t *testing.T) {
	controller, backend, _ := setupController()

	assert.NoError(t, controller.ApproveNote(context.Background()))
	backend.AssertNotCalled(t, "ApproveConsultation", mock.Anything, mock.Anything, mock.Anything)
}

func TestOpenHistoryRecord_HistoricalRecordNotApprovable(t *testing.T) {
	controller, backend, display := setupController()
	ctx := context.Background()

	historical := &types.Consultation{
		ID:            "cons-old",
		PatientID:     "patient-1",
		State:         types.StateSynced,
		RawTranscript: "Earlier visit transcript",
	}

	backend.On("ListPatients", mock.Anything).Return([]*types.Patient{testPatient}, nil)
	backend.On("GetPatientHistory", mock.Anything, "patient-1").
		Return([]*types.Consultation{historical}, nil)
	backend.On("GetConsultation", mock.Anything, "cons-old").Return(historical, nil)

	assert.NoError(t, controller.Login(ctx, "clin-1"))
	assert.NoError(t, controller.OpenHistory(ctx, "patient-1", "Thandi Nkosi"))
	assert.NoError(t, controller.OpenHistoryRecord(ctx, "cons-old"))

	display.mu.Lock()
	view := display.results[len(display.results)-1]
	display.mu.Unlock()

	assert.True(t, view.Historical)
	assert.False(t, view.CanApprove)
	assert.Empty(t, controller.Session().ActiveConsultationID)

	// Approving from here is a no-op.
	assert.NoError(t, controller.ApproveNote(ctx))
	backend.AssertNotCalled(t, "ApproveConsultation", mock.Anything, mock.Anything, mock.Anything)
}
