package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/israel77-1995/Nocta-system/pkg/config"
	"github.com/israel77-1995/Nocta-system/pkg/logger"
	"github.com/israel77-1995/Nocta-system/pkg/monitoring"
	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// apiPrefix is the fixed path every backend endpoint lives under.
const apiPrefix = "/api/v1"

// Client talks to the Nocta consultation backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
	metrics    *monitoring.MetricsCollector
}

// NewClient creates a new backend API client
func NewClient(cfg *config.APIConfig, log *logger.Logger, metrics *monitoring.MetricsCollector) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + apiPrefix,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeoutDuration(),
		},
		logger:  log,
		metrics: metrics,
	}
}

// CreateConsultation submits a new consultation for AI processing and
// returns the identifier assigned by the backend.
func (c *Client) CreateConsultation(ctx context.Context, submission *types.ConsultationSubmission) (string, error) {
	var resp types.UploadResponse
	if err := c.do(ctx, http.MethodPost, "/consultations/upload-audio", submission, &resp); err != nil {
		return "", err
	}

	id := resp.ConsultationRef()
	if id == "" {
		return "", types.NewTransportError(types.ErrCodeUploadFailed, "backend returned no consultation id", nil)
	}
	return id, nil
}

// GetConsultationStatus fetches the current processing state.
func (c *Client) GetConsultationStatus(ctx context.Context, id string) (*types.StatusResponse, error) {
	var resp types.StatusResponse
	if err := c.do(ctx, http.MethodGet, "/consultations/"+url.PathEscape(id)+"/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetConsultation fetches the full consultation record with its generated note.
func (c *Client) GetConsultation(ctx context.Context, id string) (*types.Consultation, error) {
	var resp types.Consultation
	if err := c.do(ctx, http.MethodGet, "/consultations/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ApproveConsultation posts the clinician's approval decision.
func (c *Client) ApproveConsultation(ctx context.Context, id string, decision *types.ApprovalDecision) (*types.ApprovalResult, error) {
	var resp types.ApprovalResult
	if err := c.do(ctx, http.MethodPost, "/consultations/"+url.PathEscape(id)+"/approve", decision, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPatients fetches the patient roster.
func (c *Client) ListPatients(ctx context.Context) ([]*types.Patient, error) {
	var resp []*types.Patient
	if err := c.do(ctx, http.MethodGet, "/patients", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetPatient fetches a single patient record.
func (c *Client) GetPatient(ctx context.Context, id string) (*types.Patient, error) {
	var resp types.Patient
	if err := c.do(ctx, http.MethodGet, "/patients/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPatientSummary fetches the AI-generated patient overview.
func (c *Client) GetPatientSummary(ctx context.Context, id string) (*types.PatientSummary, error) {
	var resp types.PatientSummary
	if err := c.do(ctx, http.MethodGet, "/patients/"+url.PathEscape(id)+"/summary", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPatientHistory fetches past consultations for a patient, newest first.
func (c *Client) GetPatientHistory(ctx context.Context, patientID string) ([]*types.Consultation, error) {
	var resp []*types.Consultation
	if err := c.do(ctx, http.MethodGet, "/consultations/patient/"+url.PathEscape(patientID)+"/history", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AnalyzeImage submits a clinical image for AI analysis.
func (c *Client) AnalyzeImage(ctx context.Context, req *types.ImageAnalysisRequest) (*types.ImageAnalysisResponse, error) {
	var resp types.ImageAnalysisResponse
	if err := c.do(ctx, http.MethodPost, "/image-analysis/analyze", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one backend request. Error responses carry a JSON body with
// a "message" field; anything unparsable degrades to "Unknown error".
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return types.NewTransportError(types.ErrCodeHTTPError, "failed to encode request", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return types.NewTransportError(types.ErrCodeHTTPError, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.metrics.RecordRequest(method, path, 0, duration)
		c.logger.APICall(method, path, 0, duration.Milliseconds(), err)
		return types.NewTransportError(types.ErrCodeHTTPError, "request failed: "+err.Error(), err)
	}
	defer resp.Body.Close()

	c.metrics.RecordRequest(method, path, resp.StatusCode, duration)
	c.logger.APICall(method, path, resp.StatusCode, duration.Milliseconds(), nil)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.NewTransportError(types.ErrCodeHTTPError, errorMessage(resp), nil)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return types.NewTransportError(types.ErrCodeHTTPError, "failed to decode response", err)
	}
	return nil
}

// errorMessage extracts the backend's error message from a failed
// response: the body's "message" field when present, "Unknown error"
// when the body is unparsable, the bare status otherwise.
func errorMessage(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return types.MsgUnknownError
	}
	if payload.Message == "" {
		return fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	return payload.Message
}
