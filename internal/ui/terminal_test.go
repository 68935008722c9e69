package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

func TestTerminalDisplay_RenderResults(t *testing.T) {
	var out bytes.Buffer
	display := NewTerminalDisplay(&out)

	display.RenderResults(&types.ResultView{
		ConsultationID: "cons-1",
		Subjective:     "Cough for a week",
		Objective:      "Chest clear",
		Assessment:     "Viral URTI",
		Plan:           "Symptomatic treatment",
		ICDCodes: []types.ICD10Code{
			{Code: "J06.9", Desc: "Acute upper respiratory infection"},
		},
		Actions: []types.SuggestedAction{
			{Type: "PRESCRIPTION", Drug: &types.DrugAction{Name: "Paracetamol", Dose: "500mg", Freq: "6 hourly"}},
		},
		Compliance: []types.ComplianceCheck{
			{Category: "Documentation completeness", Passed: true},
		},
		CanApprove: true,
	})

	text := out.String()
	assert.Contains(t, text, "Subjective: Cough for a week")
	assert.Contains(t, text, "J06.9  Acute upper respiratory infection")
	assert.Contains(t, text, "Paracetamol")
	assert.Contains(t, text, "[x] Documentation completeness")
	assert.Contains(t, text, "approve")
}

func TestTerminalDisplay_RenderResultsPlaceholders(t *testing.T) {
	var out bytes.Buffer
	display := NewTerminalDisplay(&out)

	display.RenderResults(&types.ResultView{
		ConsultationID:     "cons-1",
		Subjective:         "S",
		Objective:          "O",
		Assessment:         "A",
		Plan:               "P",
		ICDPlaceholder:     "No ICD codes suggested",
		ActionsPlaceholder: "No action items",
	})

	text := out.String()
	assert.Contains(t, text, "No ICD codes suggested")
	assert.Contains(t, text, "No action items")
	assert.NotContains(t, text, "approve")
}

func TestTerminalDisplay_HistoricalBanner(t *testing.T) {
	var out bytes.Buffer
	display := NewTerminalDisplay(&out)

	display.RenderResults(&types.ResultView{
		ConsultationID: "cons-old",
		Historical:     true,
		Subjective:     "Not available for this record",
	})

	assert.Contains(t, out.String(), "historical record")
}

func TestTerminalDisplay_ScreenBannerAndErrors(t *testing.T) {
	var out bytes.Buffer
	display := NewTerminalDisplay(&out)

	display.ScreenChanged(types.ScreenDashboard)
	display.ShowError("Please select a patient first")

	text := out.String()
	assert.Contains(t, text, "=== Patients ===")
	assert.Contains(t, text, "[!] Please select a patient first")
}

func TestTerminalDisplay_ApprovalSequence(t *testing.T) {
	var out bytes.Buffer
	display := NewTerminalDisplay(&out)

	display.SetApprovalBusy(true)
	display.SetApprovalPhase(types.ApprovalPhaseApproved)
	display.SetApprovalPhase(types.ApprovalPhaseSynced)
	display.ShowAppointment(&types.AppointmentRecommendation{
		Timeframe: "2 weeks",
		Reason:    "Follow-up assessment",
		Priority:  "Routine",
	})
	display.ShowEmailNotice("A visit summary has been emailed to the patient.")
	display.ShowNextSteps([]string{"Return to the patient list"})

	text := out.String()
	assert.Contains(t, text, "2 weeks")
	assert.Contains(t, text, "Follow-up assessment")
	assert.Contains(t, text, "emailed to the patient")
	assert.Contains(t, text, "Return to the patient list")
}

func TestTerminalDisplay_RenderPatients(t *testing.T) {
	var out bytes.Buffer
	display := NewTerminalDisplay(&out)

	display.RenderPatients([]*types.Patient{
		{ID: "patient-1", FirstName: "Thandi", LastName: "Nkosi", MedicalRecordNumber: "MRN-001"},
	})

	text := out.String()
	assert.Contains(t, text, "Thandi Nkosi")
	assert.Contains(t, text, "MRN-001")
}
