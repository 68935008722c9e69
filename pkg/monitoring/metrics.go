package monitoring

import (
	"sync"
	"time"
)

// MetricsCollector collects and stores metrics for the companion client
type MetricsCollector struct {
	requestCount  map[string]int64
	responseTime  map[string]time.Duration
	statusCodes   map[int]int64
	pollAttempts  int64
	workflowsOK   int64
	workflowsErr  int64
	totalRequests int64
	totalErrors   int64
	startTime     time.Time
	mutex         sync.RWMutex
}

// ClientMetrics represents overall client metrics
type ClientMetrics struct {
	TotalRequests   int64                    `json:"total_requests"`
	TotalErrors     int64                    `json:"total_errors"`
	RequestsByPath  map[string]int64         `json:"requests_by_path"`
	StatusCodes     map[int]int64            `json:"status_codes"`
	AverageResponse map[string]time.Duration `json:"average_response_time"`
	PollAttempts    int64                    `json:"poll_attempts"`
	WorkflowsOK     int64                    `json:"workflows_completed"`
	WorkflowsFailed int64                    `json:"workflows_failed"`
	Uptime          time.Duration            `json:"uptime"`
	StartTime       time.Time                `json:"start_time"`
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		requestCount: make(map[string]int64),
		responseTime: make(map[string]time.Duration),
		statusCodes:  make(map[int]int64),
		startTime:    time.Now(),
	}
}

// RecordRequest records metrics for a backend API request
func (mc *MetricsCollector) RecordRequest(method, path string, statusCode int, duration time.Duration) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	key := method + " " + path
	mc.requestCount[key]++

	// running average per method+path
	count := mc.requestCount[key]
	mc.responseTime[key] += (duration - mc.responseTime[key]) / time.Duration(count)

	mc.statusCodes[statusCode]++
	mc.totalRequests++

	if statusCode >= 400 || statusCode == 0 {
		mc.totalErrors++
	}
}

// RecordPollAttempt records one status poll attempt
func (mc *MetricsCollector) RecordPollAttempt() {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	mc.pollAttempts++
}

// RecordWorkflowOutcome records a finished consultation workflow
func (mc *MetricsCollector) RecordWorkflowOutcome(success bool) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	if success {
		mc.workflowsOK++
	} else {
		mc.workflowsErr++
	}
}

// GetMetrics returns current metrics
func (mc *MetricsCollector) GetMetrics() *ClientMetrics {
	mc.mutex.RLock()
	defer mc.mutex.RUnlock()

	avgResponse := make(map[string]time.Duration)
	for path, duration := range mc.responseTime {
		avgResponse[path] = duration
	}

	return &ClientMetrics{
		TotalRequests:   mc.totalRequests,
		TotalErrors:     mc.totalErrors,
		RequestsByPath:  copyCountMap(mc.requestCount),
		StatusCodes:     copyStatusMap(mc.statusCodes),
		AverageResponse: avgResponse,
		PollAttempts:    mc.pollAttempts,
		WorkflowsOK:     mc.workflowsOK,
		WorkflowsFailed: mc.workflowsErr,
		Uptime:          time.Since(mc.startTime),
		StartTime:       mc.startTime,
	}
}

// Reset resets all metrics
func (mc *MetricsCollector) Reset() {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	mc.requestCount = make(map[string]int64)
	mc.responseTime = make(map[string]time.Duration)
	mc.statusCodes = make(map[int]int64)
	mc.pollAttempts = 0
	mc.workflowsOK = 0
	mc.workflowsErr = 0
	mc.totalRequests = 0
	mc.totalErrors = 0
	mc.startTime = time.Now()
}

func copyCountMap(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyStatusMap(src map[int]int64) map[int]int64 {
	dst := make(map[int]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
