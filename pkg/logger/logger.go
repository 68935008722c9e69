package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with additional functionality
type Logger struct {
	*logrus.Logger
}

// New creates a new logger instance
func New(level string) *Logger {
	log := logrus.New()

	// Set log level
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	// Set output format
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	// Log to stderr: stdout belongs to the interactive screens.
	log.SetOutput(os.Stderr)

	return &Logger{Logger: log}
}

// SetOutput redirects log output, used by the CLI to log to a file.
func (l *Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// WithFields creates a new logger entry with the specified fields
func (l *Logger) WithFields(fields map[string]interface{}) *logrus.Entry {
	return l.Logger.WithFields(fields)
}

// WithField creates a new logger entry with a single field
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.Logger.WithField(key, value)
}

// WithError creates a new logger entry with an error field
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.Logger.WithError(err)
}

// WithComponent creates a new logger entry with component name field
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.Logger.WithField("component", component)
}

// WithClinicianID creates a new logger entry with clinician ID field
func (l *Logger) WithClinicianID(clinicianID string) *logrus.Entry {
	return l.Logger.WithField("clinician_id", clinicianID)
}

// WithConsultationID creates a new logger entry with consultation ID field
func (l *Logger) WithConsultationID(consultationID string) *logrus.Entry {
	return l.Logger.WithField("consultation_id", consultationID)
}

// APICall logs an outbound backend API call
func (l *Logger) APICall(method, path string, statusCode int, durationMS int64, err error) {
	entry := l.Logger.WithFields(logrus.Fields{
		"api_call":    true,
		"method":      method,
		"path":        path,
		"status_code": statusCode,
		"duration_ms": durationMS,
	})

	if err != nil {
		entry.WithError(err).Warn("Backend API call failed")
	} else {
		entry.Debug("Backend API call completed")
	}
}

// WorkflowEvent logs a consultation workflow transition
func (l *Logger) WorkflowEvent(event, consultationID string, details map[string]interface{}) {
	l.Logger.WithFields(logrus.Fields{
		"workflow":        true,
		"event":           event,
		"consultation_id": consultationID,
		"details":         details,
	}).Info("Workflow event")
}
