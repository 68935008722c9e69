package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// TerminalDisplay renders workflow screens as plain text. It stands in
// for the mobile web page's DOM: the controller decides what to show,
// this type decides how it looks on a terminal.
type TerminalDisplay struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminalDisplay creates a display writing to out.
func NewTerminalDisplay(out io.Writer) *TerminalDisplay {
	return &TerminalDisplay{out: out}
}

var screenTitles = map[types.Screen]string{
	types.ScreenLogin:        "Clinician Login",
	types.ScreenDashboard:    "Patients",
	types.ScreenSummary:      "Patient Summary",
	types.ScreenConsultation: "Consultation",
	types.ScreenResults:      "Consultation Results",
	types.ScreenHistory:      "Consultation History",
	types.ScreenImageModal:   "Image Analysis",
}

// ScreenChanged prints a banner for the newly active screen.
func (d *TerminalDisplay) ScreenChanged(screen types.Screen) {
	d.mu.Lock()
	defer d.mu.Unlock()

	title, ok := screenTitles[screen]
	if !ok {
		title = string(screen)
	}
	fmt.Fprintf(d.out, "\n=== %s ===\n", title)
}

// ShowError prints a blocking user-visible message.
func (d *TerminalDisplay) ShowError(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "\n[!] %s\n", message)
}

// ShowProcessing prints the processing indicator with the first step active.
func (d *TerminalDisplay) ShowProcessing(steps []string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintln(d.out, "\nAI Processing Consultation...")
	for _, step := range steps {
		fmt.Fprintf(d.out, "  [ ] %s\n", step)
	}
}

// CompleteProcessingStep marks one step of the indicator as done.
func (d *TerminalDisplay) CompleteProcessingStep(index int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "  [x] step %d complete\n", index+1)
}

// RenderResults prints the SOAP note, codes, actions and compliance rows.
func (d *TerminalDisplay) RenderResults(view *types.ResultView) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintln(d.out)
	if view.Historical {
		fmt.Fprintln(d.out, "(historical record - generated before AI processing)")
	}

	fmt.Fprintf(d.out, "Subjective: %s\n", view.Subjective)
	fmt.Fprintf(d.out, "Objective:  %s\n", view.Objective)
	fmt.Fprintf(d.out, "Assessment: %s\n", view.Assessment)
	fmt.Fprintf(d.out, "Plan:       %s\n", view.Plan)

	fmt.Fprintln(d.out, "\nICD-10 Codes:")
	if len(view.ICDCodes) == 0 {
		fmt.Fprintf(d.out, "  %s\n", view.ICDPlaceholder)
	}
	for _, code := range view.ICDCodes {
		fmt.Fprintf(d.out, "  %s  %s\n", code.Code, code.Label())
	}

	fmt.Fprintln(d.out, "\nSuggested Actions:")
	if len(view.Actions) == 0 {
		fmt.Fprintf(d.out, "  %s\n", view.ActionsPlaceholder)
	}
	for _, action := range view.Actions {
		fmt.Fprintf(d.out, "  [%s] %s\n", action.Type, actionSummary(action))
	}

	fmt.Fprintln(d.out, "\nCompliance:")
	if len(view.Compliance) == 0 {
		fmt.Fprintf(d.out, "  %s\n", view.CompliancePlaceholder)
	}
	for _, check := range view.Compliance {
		mark := "x"
		if !check.Passed {
			mark = " "
		}
		fmt.Fprintf(d.out, "  [%s] %s\n", mark, check.Category)
	}

	if view.CanApprove {
		fmt.Fprintln(d.out, "\nType 'approve' to approve this note.")
	}
}

// actionSummary formats one action item the way the results screen lists
// them: drug name/dose/frequency, order name and reason, or referral
// specialty and reason.
func actionSummary(action types.SuggestedAction) string {
	switch {
	case action.Drug != nil:
		return fmt.Sprintf("%s %s %s", action.Drug.Name, action.Drug.Dose, action.Drug.Freq)
	case action.Order != nil:
		return fmt.Sprintf("%s - %s", action.Order.Name, action.Order.Reason)
	case action.Ref != nil:
		return fmt.Sprintf("%s - %s", action.Ref.Specialty, action.Ref.Reason)
	default:
		return "Action item"
	}
}

// SetApprovalBusy toggles the approval trigger label.
func (d *TerminalDisplay) SetApprovalBusy(busy bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if busy {
		fmt.Fprintln(d.out, "\nApproving...")
	} else {
		fmt.Fprintln(d.out, "\nApprove & Sign")
	}
}

var approvalPhaseText = map[types.ApprovalPhase]string{
	types.ApprovalPhaseApproved: "Note approved",
	types.ApprovalPhaseQueued:   "Queued for EHR sync",
	types.ApprovalPhaseSyncing:  "Syncing to EHR...",
	types.ApprovalPhaseSynced:   "Synced",
}

// SetApprovalPhase prints one phase of the confirmation sequence.
func (d *TerminalDisplay) SetApprovalPhase(phase types.ApprovalPhase) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "  * %s\n", approvalPhaseText[phase])
}

// ShowAppointment prints the parsed follow-up recommendation.
func (d *TerminalDisplay) ShowAppointment(rec *types.AppointmentRecommendation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.out, "\nNext Appointment:")
	fmt.Fprintf(d.out, "  When:     %s\n", rec.Timeframe)
	fmt.Fprintf(d.out, "  Reason:   %s\n", rec.Reason)
	fmt.Fprintf(d.out, "  Priority: %s\n", rec.Priority)
}

// ShowEmailNotice prints the patient email confirmation.
func (d *TerminalDisplay) ShowEmailNotice(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "\n%s\n", message)
}

// ShowNextSteps prints the closing next-steps panel.
func (d *TerminalDisplay) ShowNextSteps(steps []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.out, "\nNext steps:")
	for _, step := range steps {
		fmt.Fprintf(d.out, "  - %s\n", step)
	}
}

// RenderPatients prints the patient roster.
func (d *TerminalDisplay) RenderPatients(patients []*types.Patient) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(patients) == 0 {
		fmt.Fprintln(d.out, "No patients found")
		return
	}
	for i, p := range patients {
		fmt.Fprintf(d.out, "%2d. %s (MRN %s, DOB %s)\n", i+1, p.FullName(), p.MedicalRecordNumber, p.DOB)
	}
}

// RenderSummary prints the patient header and AI summary.
func (d *TerminalDisplay) RenderSummary(patient *types.Patient, summary string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintf(d.out, "%s (MRN %s)\n", patient.FullName(), patient.MedicalRecordNumber)
	if len(patient.Allergies) > 0 {
		fmt.Fprintf(d.out, "Allergies: %s\n", strings.Join(patient.Allergies, ", "))
	}
	if len(patient.ChronicConditions) > 0 {
		fmt.Fprintf(d.out, "Chronic conditions: %s\n", strings.Join(patient.ChronicConditions, ", "))
	}
	if summary != "" {
		fmt.Fprintf(d.out, "\n%s\n", summary)
	}
}

// RenderHistory prints past consultations, newest first.
func (d *TerminalDisplay) RenderHistory(records []*types.Consultation) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(records) == 0 {
		fmt.Fprintln(d.out, "No previous consultations")
		return
	}
	for i, record := range records {
		excerpt := record.RawTranscript
		if len(excerpt) > 60 {
			excerpt = excerpt[:60] + "..."
		}
		fmt.Fprintf(d.out, "%2d. %s  [%s]  %s\n", i+1,
			record.Timestamp.Format("2006-01-02 15:04"), record.State, excerpt)
	}
}

// RenderImageAnalysis prints the analysis result or its error.
func (d *TerminalDisplay) RenderImageAnalysis(result *types.ImageAnalysisResponse) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !result.Success {
		message := result.Error
		if message == "" {
			message = "Image analysis failed"
		}
		fmt.Fprintf(d.out, "[!] %s\n", message)
		return
	}
	fmt.Fprintf(d.out, "%s\n", result.Analysis)
}
