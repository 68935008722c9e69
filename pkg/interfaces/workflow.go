package interfaces

import (
	"context"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// Backend defines the consultation backend API surface consumed by the
// workflow controller.
type Backend interface {
	// Consultation lifecycle
	CreateConsultation(ctx context.Context, submission *types.ConsultationSubmission) (string, error)
	GetConsultationStatus(ctx context.Context, id string) (*types.StatusResponse, error)
	GetConsultation(ctx context.Context, id string) (*types.Consultation, error)
	ApproveConsultation(ctx context.Context, id string, decision *types.ApprovalDecision) (*types.ApprovalResult, error)

	// Patient roster
	ListPatients(ctx context.Context) ([]*types.Patient, error)
	GetPatient(ctx context.Context, id string) (*types.Patient, error)
	GetPatientSummary(ctx context.Context, id string) (*types.PatientSummary, error)
	GetPatientHistory(ctx context.Context, patientID string) ([]*types.Consultation, error)

	// Clinical image analysis
	AnalyzeImage(ctx context.Context, req *types.ImageAnalysisRequest) (*types.ImageAnalysisResponse, error)
}

// Display defines the presentation surface the workflow controller drives.
// It is the stand-in for the mobile web page's DOM: the controller decides
// what is shown, the Display decides how.
type Display interface {
	// Screen navigation
	ScreenChanged(screen types.Screen)

	// Blocking user-visible messages
	ShowError(message string)

	// Cosmetic processing indicator on the results screen
	ShowProcessing(steps []string)
	CompleteProcessingStep(index int)

	// Results screen
	RenderResults(view *types.ResultView)

	// Approval sequencing
	SetApprovalBusy(busy bool)
	SetApprovalPhase(phase types.ApprovalPhase)
	ShowAppointment(rec *types.AppointmentRecommendation)
	ShowEmailNotice(message string)
	ShowNextSteps(steps []string)

	// Dashboard / summary / history / image screens
	RenderPatients(patients []*types.Patient)
	RenderSummary(patient *types.Patient, summary string)
	RenderHistory(records []*types.Consultation)
	RenderImageAnalysis(result *types.ImageAnalysisResponse)
}
