package workflow

import "strings"

// PlaceholderID is the value the legacy web client shipped when a select
// control was never touched. It must never reach the backend.
const PlaceholderID = "undefined"

// Session holds the transient per-run state owned by the controller:
// the logged-in clinician, the selected patient and the consultation
// currently being worked on. Nothing here is persisted.
type Session struct {
	ClinicianID          string
	PatientID            string
	PatientName          string
	ActiveConsultationID string
}

// Login records the clinician for this run.
func (s *Session) Login(clinicianID string) {
	s.ClinicianID = strings.TrimSpace(clinicianID)
}

// Logout clears the whole session.
func (s *Session) Logout() {
	s.ClinicianID = ""
	s.ClearPatient()
}

// SelectPatient records the active patient.
func (s *Session) SelectPatient(patientID, patientName string) {
	s.PatientID = patientID
	s.PatientName = patientName
	s.ActiveConsultationID = ""
}

// ClearPatient drops the patient and consultation selection, as happens
// when navigating back to the patient list.
func (s *Session) ClearPatient() {
	s.PatientID = ""
	s.PatientName = ""
	s.ActiveConsultationID = ""
}

// HasClinician reports whether a usable clinician id is present.
func (s Session) HasClinician() bool {
	return validID(s.ClinicianID)
}

// HasPatient reports whether a usable patient id is present.
func (s Session) HasPatient() bool {
	return validID(s.PatientID)
}

func validID(id string) bool {
	return id != "" && id != PlaceholderID
}
