package types

// Screen identifies one of the fixed workflow screens. Exactly one screen
// is active at a time.
type Screen string

const (
	ScreenLogin        Screen = "login"
	ScreenDashboard    Screen = "dashboard"
	ScreenSummary      Screen = "summary"
	ScreenConsultation Screen = "consultation"
	ScreenResults      Screen = "results"
	ScreenHistory      Screen = "history"
	ScreenImageModal   Screen = "image_modal"
)

// Action is a named navigation edge. Navigation is a fixed set of named
// edges, not a history stack; undefined (screen, action) pairs are rejected.
type Action string

const (
	ActionLogin              Action = "login"
	ActionLogout             Action = "logout"
	ActionSelectPatient      Action = "select_patient"
	ActionStartConsultation  Action = "start_consultation"
	ActionSubmit             Action = "submit"
	ActionViewHistory        Action = "view_history"
	ActionOpenRecord         Action = "open_record"
	ActionOpenImageModal     Action = "open_image_modal"
	ActionCloseImageModal    Action = "close_image_modal"
	ActionBackToDashboard    Action = "back_to_dashboard"
	ActionBackToConsultation Action = "back_to_consultation"
)

// ApprovalPhase is one state of the scripted post-approval confirmation
// sequence. The sequence is presentation only; the server is not polled
// after approval.
type ApprovalPhase string

const (
	ApprovalPhaseApproved ApprovalPhase = "approved"
	ApprovalPhaseQueued   ApprovalPhase = "queued"
	ApprovalPhaseSyncing  ApprovalPhase = "syncing"
	ApprovalPhaseSynced   ApprovalPhase = "synced"
)
