package types

import "time"

// ConsultationState represents the backend-reported state of a consultation.
// The vocabulary is owned by the backend; the client only distinguishes
// terminal success, terminal failure and "still processing".
type ConsultationState string

const (
	StateQueued     ConsultationState = "QUEUED"
	StateProcessing ConsultationState = "PROCESSING"
	StateReady      ConsultationState = "READY"
	StateCompleted  ConsultationState = "COMPLETED"
	StateApproved   ConsultationState = "APPROVED"
	StateSynced     ConsultationState = "SYNCED"
	StateError      ConsultationState = "ERROR"
	StateFailed     ConsultationState = "FAILED"
)

// IsTerminalSuccess reports whether processing finished and results can be fetched.
func (s ConsultationState) IsTerminalSuccess() bool {
	return s == StateReady || s == StateCompleted
}

// IsTerminalFailure reports whether processing failed on the backend.
func (s ConsultationState) IsTerminalFailure() bool {
	return s == StateError || s == StateFailed
}

// VitalSigns holds the optional vitals attached to a submission. Absent
// fields must serialize as JSON null, never as empty strings or zeroes.
type VitalSigns struct {
	BloodPressure    *string  `json:"bloodPressure"`
	HeartRate        *int     `json:"heartRate"`
	Temperature      *float64 `json:"temperature"`
	OxygenSaturation *int     `json:"oxygenSaturation"`
	RespiratoryRate  *int     `json:"respiratoryRate,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	Height           *float64 `json:"height,omitempty"`
}

// IsEmpty reports whether no vital field was captured.
func (v *VitalSigns) IsEmpty() bool {
	if v == nil {
		return true
	}
	return v.BloodPressure == nil && v.HeartRate == nil && v.Temperature == nil &&
		v.OxygenSaturation == nil && v.RespiratoryRate == nil && v.Weight == nil && v.Height == nil
}

// ConsultationSubmission is the upload request body. RawTranscript is
// trimmed and validated non-empty before a submission is ever constructed.
type ConsultationSubmission struct {
	PatientID     string      `json:"patientId"`
	ClinicianID   string      `json:"clinicianId"`
	RawTranscript string      `json:"rawTranscript"`
	AudioURL      *string     `json:"audioUrl"`
	VitalSigns    *VitalSigns `json:"vitalSigns"`
}

// UploadResponse is returned by the consultation upload endpoint. Older
// backend builds return the identifier as "id", newer ones as
// "consultationId"; ConsultationRef resolves whichever is present.
type UploadResponse struct {
	ConsultationID string            `json:"consultationId"`
	ID             string            `json:"id"`
	Status         ConsultationState `json:"status"`
}

// ConsultationRef returns the consultation identifier from the response.
func (r *UploadResponse) ConsultationRef() string {
	if r.ConsultationID != "" {
		return r.ConsultationID
	}
	return r.ID
}

// StatusResponse is returned by the status polling endpoint.
type StatusResponse struct {
	ConsultationID string            `json:"consultationId"`
	State          ConsultationState `json:"state"`
	ErrorMessage   string            `json:"errorMessage"`
}

// GeneratedNote is the AI-produced documentation attached to a processed
// consultation. ICD10Codes and SuggestedActions are JSON-encoded strings
// as stored by the backend; decoding is tolerant and never fatal.
type GeneratedNote struct {
	ID               string   `json:"id,omitempty"`
	SoapSubjective   string   `json:"soapSubjective"`
	SoapObjective    string   `json:"soapObjective"`
	SoapAssessment   string   `json:"soapAssessment"`
	SoapPlan         string   `json:"soapPlan"`
	ICD10Codes       string   `json:"icd10Codes"`
	SuggestedActions string   `json:"suggestedActions"`
	PatientSummary   string   `json:"patientSummary,omitempty"`
	Confidence       *float64 `json:"confidence,omitempty"`
}

// ICD10Code is one entry of the decoded icd10Codes list. The backend has
// emitted both "desc" and "description" over time.
type ICD10Code struct {
	Code        string `json:"code"`
	Desc        string `json:"desc"`
	Description string `json:"description"`
}

// Label returns the human-readable description regardless of which field
// the backend populated.
func (c ICD10Code) Label() string {
	if c.Desc != "" {
		return c.Desc
	}
	return c.Description
}

// DrugAction is a suggested prescription.
type DrugAction struct {
	Name string `json:"name"`
	Dose string `json:"dose"`
	Freq string `json:"freq"`
}

// OrderAction is a suggested lab or diagnostic order.
type OrderAction struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ReferralAction is a suggested specialist referral.
type ReferralAction struct {
	Specialty string `json:"specialty"`
	Reason    string `json:"reason"`
}

// SuggestedAction is one entry of the decoded suggestedActions list.
// Exactly one of Drug, Order or Ref is populated depending on Type.
type SuggestedAction struct {
	Type  string          `json:"type"`
	Drug  *DrugAction     `json:"drug,omitempty"`
	Order *OrderAction    `json:"order,omitempty"`
	Ref   *ReferralAction `json:"ref,omitempty"`
}

// SuggestedActionList is the envelope the backend wraps action items in.
type SuggestedActionList struct {
	Actions []SuggestedAction `json:"actions"`
}

// Consultation is the full consultation detail record. GeneratedNote is
// nil for historical records that predate AI processing.
type Consultation struct {
	ID            string            `json:"id"`
	PatientID     string            `json:"patientId"`
	ClinicianID   string            `json:"clinicianId"`
	Timestamp     time.Time         `json:"timestamp"`
	RawTranscript string            `json:"rawTranscript"`
	State         ConsultationState `json:"state"`
	GeneratedNote *GeneratedNote    `json:"generatedNote"`
	VitalSigns    *VitalSigns       `json:"vitalSigns,omitempty"`
}

// ApprovalDecision is the approval request body.
type ApprovalDecision struct {
	ClinicianID string `json:"clinicianId"`
	Approve     bool   `json:"approve"`
}

// ApprovalResult is the approval response. Message is free text that may
// carry a labeled appointment recommendation.
type ApprovalResult struct {
	Approved bool   `json:"approved"`
	Message  string `json:"message"`
}

// AppointmentRecommendation is parsed out of the approval message's
// TIMEFRAME / REASON / PRIORITY labeled lines.
type AppointmentRecommendation struct {
	Timeframe string `json:"timeframe"`
	Reason    string `json:"reason"`
	Priority  string `json:"priority"`
}

// Default appointment recommendation values used when the approval message
// carries no parsable labeled fields.
const (
	DefaultAppointmentTimeframe = "2 weeks"
	DefaultAppointmentReason    = "Follow-up assessment"
	DefaultAppointmentPriority  = "Routine"
)

// ImageAnalysisRequest is the request body for clinical image analysis.
type ImageAnalysisRequest struct {
	Base64Image string `json:"base64Image"`
	Context     string `json:"context"`
}

// ImageAnalysisResponse is the image analysis result envelope.
type ImageAnalysisResponse struct {
	Success  bool   `json:"success"`
	Analysis string `json:"analysis"`
	Error    string `json:"error"`
}
