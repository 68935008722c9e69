package types

// ComplianceCheck is one row of the static compliance summary. The checks
// are a display-only placeholder, not a compliance engine.
type ComplianceCheck struct {
	Category string `json:"category"`
	Passed   bool   `json:"passed"`
	Note     string `json:"note"`
}

// ResultView is the fully resolved view model for the results screen.
// Building it never fails: malformed embedded JSON degrades to an empty
// list plus a placeholder, absent SOAP fields fall back to "N/A".
type ResultView struct {
	ConsultationID string `json:"consultationId"`

	// Historical marks a record that predates AI processing. Historical
	// records carry no generated note and cannot be approved.
	Historical bool `json:"historical"`

	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`

	ICDCodes       []ICD10Code `json:"icdCodes"`
	ICDPlaceholder string      `json:"icdPlaceholder,omitempty"`

	Actions            []SuggestedAction `json:"actions"`
	ActionsPlaceholder string            `json:"actionsPlaceholder,omitempty"`

	Compliance            []ComplianceCheck `json:"compliance"`
	CompliancePlaceholder string            `json:"compliancePlaceholder,omitempty"`

	CanApprove bool `json:"canApprove"`
}
