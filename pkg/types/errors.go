package types

import "fmt"

// ErrorType represents different categories of workflow errors
type ErrorType string

const (
	// ErrorTypeValidation covers precondition failures caught locally,
	// before any network traffic (empty transcript, placeholder ids).
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeTransport covers network failures, non-success HTTP
	// statuses and unparsable response bodies.
	ErrorTypeTransport ErrorType = "transport"
	// ErrorTypeBackend covers terminal failures reported by the backend
	// (ERROR / FAILED consultation states).
	ErrorTypeBackend ErrorType = "backend"
	// ErrorTypeTimeout covers the exhausted polling budget.
	// Malformed embedded JSON is not an error category: parse failures
	// degrade to placeholder renders and never block a workflow.
	ErrorTypeTimeout ErrorType = "timeout"
)

// WorkflowError is a structured error carried through the consultation
// workflow. Message is safe to surface to the clinician as-is.
type WorkflowError struct {
	Type    ErrorType              `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *WorkflowError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *WorkflowError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(code, message string) *WorkflowError {
	return &WorkflowError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewTransportError creates a new transport error
func NewTransportError(code, message string, cause error) *WorkflowError {
	return &WorkflowError{
		Type:    ErrorTypeTransport,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewBackendError creates a new backend-reported failure
func NewBackendError(code, message string) *WorkflowError {
	return &WorkflowError{
		Type:    ErrorTypeBackend,
		Code:    code,
		Message: message,
	}
}

// NewTimeoutError creates a new polling timeout error
func NewTimeoutError(code, message string) *WorkflowError {
	return &WorkflowError{
		Type:    ErrorTypeTimeout,
		Code:    code,
		Message: message,
	}
}

// Common error codes
const (
	ErrCodeEmptyTranscript   = "EMPTY_TRANSCRIPT"
	ErrCodeInvalidVitals     = "INVALID_VITALS"
	ErrCodeNoPatient         = "NO_PATIENT_SELECTED"
	ErrCodeNoClinician       = "NO_CLINICIAN"
	ErrCodeUploadFailed      = "UPLOAD_FAILED"
	ErrCodeStatusFetchFailed = "STATUS_FETCH_FAILED"
	ErrCodeDetailFetchFailed = "DETAIL_FETCH_FAILED"
	ErrCodeProcessingFailed  = "PROCESSING_FAILED"
	ErrCodePollTimeout       = "POLL_TIMEOUT"
	ErrCodeApprovalFailed    = "APPROVAL_FAILED"
	ErrCodeHTTPError         = "HTTP_ERROR"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
)

// Messages surfaced for failures the backend gives no detail for.
const (
	MsgUnknownError     = "Unknown error"
	MsgProcessingFailed = "Consultation processing failed"
	MsgPollTimeout      = "Processing is taking longer than expected. Please check results later."
)
