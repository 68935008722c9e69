package types

// Patient is a patient record as served by the backend patient endpoints.
type Patient struct {
	ID                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	DOB                 string   `json:"dob"`
	MedicalRecordNumber string   `json:"medicalRecordNumber"`
	Allergies           []string `json:"allergies"`
	ChronicConditions   []string `json:"chronicConditions"`
}

// FullName returns the display name used on patient lists and headers.
func (p *Patient) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// PatientSummary is the AI-generated patient overview.
type PatientSummary struct {
	PatientID string `json:"patientId"`
	Summary   string `json:"summary"`
}
