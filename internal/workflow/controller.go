package workflow

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/israel77-1995/Nocta-system/pkg/config"
	"github.com/israel77-1995/Nocta-system/pkg/interfaces"
	"github.com/israel77-1995/Nocta-system/pkg/logger"
	"github.com/israel77-1995/Nocta-system/pkg/monitoring"
	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// Controller owns the consultation workflow: session state, screen
// navigation, the submission pipeline with its status poll loop, result
// rendering and the approval sequence. All shared state is guarded by a
// single mutex because the poll loop completes on its own goroutine.
type Controller struct {
	mu        sync.Mutex
	backend   interfaces.Backend
	display   interfaces.Display
	navigator *Navigator
	session   Session
	cfg       *config.WorkflowConfig
	logger    *logger.Logger
	metrics   *monitoring.MetricsCollector

	// active poll task; replaced (after cancellation) when a new
	// submission starts, cancelled when the user navigates away
	cancelPoll context.CancelFunc
	pollDone   chan struct{}

	animator  *progressAnimator
	approving bool
}

// NewController creates a workflow controller starting on the login screen.
func NewController(backend interfaces.Backend, display interfaces.Display, cfg *config.WorkflowConfig, log *logger.Logger, metrics *monitoring.MetricsCollector) *Controller {
	c := &Controller{
		backend: backend,
		display: display,
		cfg:     cfg,
		logger:  log,
		metrics: metrics,
	}
	c.navigator = NewNavigator(display)
	return c
}

// CurrentScreen returns the active screen.
func (c *Controller) CurrentScreen() types.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigator.Current()
}

// Session returns a copy of the current session state.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Login records the clinician and moves to the dashboard, rendering the
// patient roster. An empty id is rejected without touching the session.
func (c *Controller) Login(ctx context.Context, clinicianID string) error {
	clinicianID = strings.TrimSpace(clinicianID)
	if clinicianID == "" {
		c.display.ShowError("Please enter Clinician ID")
		return types.NewValidationError(types.ErrCodeNoClinician, "clinician id is required")
	}

	c.mu.Lock()
	if _, err := c.navigator.Apply(types.ActionLogin); err != nil {
		c.mu.Unlock()
		return err
	}
	c.session.Login(clinicianID)
	c.mu.Unlock()

	c.logger.WithClinicianID(clinicianID).Info("Clinician logged in")
	return c.RefreshPatients(ctx)
}

// Logout clears the session and returns to the login screen. Any live
// poll task is cancelled.
func (c *Controller) Logout() error {
	c.stopPolling()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Logout()
	_, err := c.navigator.Apply(types.ActionLogout)
	return err
}

// RefreshPatients fetches the patient roster for the dashboard.
func (c *Controller) RefreshPatients(ctx context.Context) error {
	patients, err := c.backend.ListPatients(ctx)
	if err != nil {
		c.display.ShowError(userMessage(err))
		return err
	}
	c.display.RenderPatients(patients)
	return nil
}

// SelectPatient makes a patient active and opens their summary screen.
func (c *Controller) SelectPatient(ctx context.Context, patientID string) error {
	patient, err := c.backend.GetPatient(ctx, patientID)
	if err != nil {
		c.display.ShowError(userMessage(err))
		return err
	}

	summary, err := c.backend.GetPatientSummary(ctx, patientID)
	if err != nil {
		c.display.ShowError(userMessage(err))
		return err
	}

	c.mu.Lock()
	c.session.SelectPatient(patient.ID, patient.FullName())
	_, navErr := c.navigator.Apply(types.ActionSelectPatient)
	c.mu.Unlock()
	if navErr != nil {
		return navErr
	}

	c.display.RenderSummary(patient, summary.Summary)
	return nil
}

// StartConsultation moves from the patient summary to the consultation
// capture screen.
func (c *Controller) StartConsultation() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.navigator.Apply(types.ActionStartConsultation)
	return err
}

// OpenHistory fetches and shows the selected patient's past consultations.
func (c *Controller) OpenHistory(ctx context.Context, patientID, patientName string) error {
	records, err := c.backend.GetPatientHistory(ctx, patientID)
	if err != nil {
		c.display.ShowError(userMessage(err))
		return err
	}

	c.mu.Lock()
	c.session.SelectPatient(patientID, patientName)
	_, navErr := c.navigator.Apply(types.ActionViewHistory)
	c.mu.Unlock()
	if navErr != nil {
		return navErr
	}

	c.display.RenderHistory(records)
	return nil
}

// OpenHistoryRecord loads one past consultation onto the results screen.
// Records that predate AI processing render with placeholders and no
// approval controls.
func (c *Controller) OpenHistoryRecord(ctx context.Context, consultationID string) error {
	consultation, err := c.backend.GetConsultation(ctx, consultationID)
	if err != nil {
		c.display.ShowError(userMessage(err))
		return err
	}

	view := BuildResultView(consultation)

	c.mu.Lock()
	if view.CanApprove {
		c.session.ActiveConsultationID = consultation.ID
	} else {
		c.session.ActiveConsultationID = ""
	}
	_, navErr := c.navigator.Apply(types.ActionOpenRecord)
	c.mu.Unlock()
	if navErr != nil {
		return navErr
	}

	c.display.RenderResults(view)
	return nil
}

// OpenImageModal opens the clinical image analysis modal.
func (c *Controller) OpenImageModal() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.navigator.Apply(types.ActionOpenImageModal)
	return err
}

// CloseImageModal returns from the image modal to the consultation screen.
func (c *Controller) CloseImageModal() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.navigator.Apply(types.ActionCloseImageModal)
	return err
}

// AnalyzeImage submits a clinical image with optional context and renders
// the analysis in the modal.
func (c *Controller) AnalyzeImage(ctx context.Context, base64Image, clinicalContext string) error {
	result, err := c.backend.AnalyzeImage(ctx, &types.ImageAnalysisRequest{
		Base64Image: base64Image,
		Context:     clinicalContext,
	})
	if err != nil {
		c.display.ShowError(userMessage(err))
		return err
	}
	c.display.RenderImageAnalysis(result)
	return nil
}

// BackToDashboard returns to the patient list, clearing the patient and
// consultation selection and cancelling any live poll task.
func (c *Controller) BackToDashboard() error {
	c.stopPolling()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.ClearPatient()
	_, err := c.navigator.Apply(types.ActionBackToDashboard)
	return err
}

// BackToConsultation returns from the results screen to the consultation
// screen, keeping the selected patient so the clinician can retry.
func (c *Controller) BackToConsultation() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.navigator.Apply(types.ActionBackToConsultation)
	return err
}

// SubmitConsultation validates the captured transcript and vitals, posts
// the consultation and starts the status poll loop. Validation failures
// never reach the network and leave the session untouched.
func (c *Controller) SubmitConsultation(ctx context.Context, transcript string, vitalsInput VitalSignsInput) error {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		c.display.ShowError("Please provide a transcript")
		c.navigateTo(types.ActionBackToConsultation)
		return types.NewValidationError(types.ErrCodeEmptyTranscript, "transcript is required")
	}

	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if !session.HasClinician() {
		c.display.ShowError("Session expired. Please log in again.")
		c.expireSession()
		return types.NewValidationError(types.ErrCodeNoClinician, "no clinician logged in")
	}

	if !session.HasPatient() {
		c.display.ShowError("Please select a patient first")
		c.navigateTo(types.ActionBackToConsultation)
		return types.NewValidationError(types.ErrCodeNoPatient, "no patient selected")
	}

	vitals, err := vitalsInput.Parse()
	if err != nil {
		c.display.ShowError(userMessage(err))
		return err
	}

	submission := &types.ConsultationSubmission{
		PatientID:     session.PatientID,
		ClinicianID:   session.ClinicianID,
		RawTranscript: transcript,
		VitalSigns:    vitals,
	}

	instanceID := uuid.New().String()
	c.logger.WithFields(map[string]interface{}{
		"workflow_instance": instanceID,
		"patient_id":        session.PatientID,
	}).Info("Submitting consultation")

	// Switch to the results screen and start the cosmetic processing
	// indicator before the upload; the animation runs on its own clock
	// and says nothing about real backend progress.
	c.stopAnimator()
	c.mu.Lock()
	if _, navErr := c.navigator.Apply(types.ActionSubmit); navErr != nil {
		c.mu.Unlock()
		return navErr
	}
	c.animator = startProgressAnimation(c.display, c.cfg.StepCadenceDuration())
	c.mu.Unlock()

	consultationID, err := c.backend.CreateConsultation(ctx, submission)
	if err != nil {
		c.logger.WithError(err).Error("Consultation upload failed")
		c.failWorkflow("Error submitting consultation: "+userMessage(err), types.ActionBackToConsultation)
		return err
	}

	c.mu.Lock()
	c.session.ActiveConsultationID = consultationID
	c.mu.Unlock()

	c.logger.WorkflowEvent("consultation_submitted", consultationID, map[string]interface{}{
		"workflow_instance": instanceID,
	})

	c.startPolling(consultationID)
	return nil
}

// expireSession drops a dead session and forces the login screen,
// cancelling any live poll task first.
func (c *Controller) expireSession() {
	c.stopPolling()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Logout()
	_, _ = c.navigator.Apply(types.ActionLogout)
}

// navigateTo applies an action and ignores invalid-transition errors; the
// caller may already be on the target screen.
func (c *Controller) navigateTo(action types.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.navigator.Apply(action)
}

// failWorkflow stops the processing animation, surfaces a message and
// navigates back one step.
func (c *Controller) failWorkflow(message string, back types.Action) {
	c.stopAnimator()
	c.metrics.RecordWorkflowOutcome(false)
	c.display.ShowError(message)
	c.navigateTo(back)
}

func (c *Controller) stopAnimator() {
	c.mu.Lock()
	animator := c.animator
	c.animator = nil
	c.mu.Unlock()

	if animator != nil {
		animator.Stop()
	}
}

// userMessage extracts the clinician-facing text from an error.
func userMessage(err error) string {
	if wfErr, ok := err.(*types.WorkflowError); ok {
		return wfErr.Message
	}
	return err.Error()
}
