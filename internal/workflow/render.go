package workflow

import (
	"encoding/json"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// Placeholder copy for the results screen.
const (
	soapFallback            = "N/A"
	historicalSOAPText      = "Not available for this record"
	noICDCodesPlaceholder   = "No ICD codes suggested"
	noActionsPlaceholder    = "No action items"
	noCompliancePlaceholder = "No data"
)

// complianceCategories are the four fixed rows of the static compliance
// summary. Always rendered as passing; this is display copy, not a
// compliance engine.
var complianceCategories = []string{
	"Documentation completeness",
	"ICD-10 coding consistency",
	"Medication safety",
	"Billing readiness",
}

// BuildResultView resolves a consultation record into the results-screen
// view model. It never fails: malformed embedded JSON and absent fields
// degrade to placeholders.
func BuildResultView(consultation *types.Consultation) *types.ResultView {
	if consultation.GeneratedNote == nil {
		return historicalView(consultation)
	}

	note := consultation.GeneratedNote
	view := &types.ResultView{
		ConsultationID: consultation.ID,
		Subjective:     orFallback(note.SoapSubjective),
		Objective:      orFallback(note.SoapObjective),
		Assessment:     orFallback(note.SoapAssessment),
		Plan:           orFallback(note.SoapPlan),
		CanApprove:     true,
	}

	view.ICDCodes = decodeICDCodes(note.ICD10Codes)
	if len(view.ICDCodes) == 0 {
		view.ICDPlaceholder = noICDCodesPlaceholder
	}

	view.Actions = decodeActions(note.SuggestedActions)
	if len(view.Actions) == 0 {
		view.ActionsPlaceholder = noActionsPlaceholder
	}

	for _, category := range complianceCategories {
		view.Compliance = append(view.Compliance, types.ComplianceCheck{
			Category: category,
			Passed:   true,
			Note:     "Passed",
		})
	}

	return view
}

// historicalView renders a record that predates AI processing: SOAP
// placeholders with the raw transcript standing in for the objective
// section, and no approval controls.
func historicalView(consultation *types.Consultation) *types.ResultView {
	return &types.ResultView{
		ConsultationID:        consultation.ID,
		Historical:            true,
		Subjective:            historicalSOAPText,
		Objective:             orFallback(consultation.RawTranscript),
		Assessment:            historicalSOAPText,
		Plan:                  historicalSOAPText,
		ICDPlaceholder:        noCompliancePlaceholder,
		ActionsPlaceholder:    noCompliancePlaceholder,
		CompliancePlaceholder: noCompliancePlaceholder,
		CanApprove:            false,
	}
}

// decodeICDCodes parses the JSON-encoded ICD-10 list. Malformed or empty
// input yields nil.
func decodeICDCodes(encoded string) []types.ICD10Code {
	if encoded == "" {
		return nil
	}
	var codes []types.ICD10Code
	if err := json.Unmarshal([]byte(encoded), &codes); err != nil {
		return nil
	}
	return codes
}

// decodeActions parses the JSON-encoded action item envelope. Malformed
// or empty input yields nil.
func decodeActions(encoded string) []types.SuggestedAction {
	if encoded == "" {
		return nil
	}
	var list types.SuggestedActionList
	if err := json.Unmarshal([]byte(encoded), &list); err != nil {
		return nil
	}
	return list.Actions
}

func orFallback(s string) string {
	if s == "" {
		return soapFallback
	}
	return s
}
