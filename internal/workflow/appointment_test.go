package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

func TestParseAppointmentRecommendation(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		timeframe string
		reason    string
		priority  string
	}{
		{
			name:      "all fields labeled",
			message:   "TIMEFRAME: 1 week\nREASON: Blood pressure recheck\nPRIORITY: Urgent",
			timeframe: "1 week",
			reason:    "Blood pressure recheck",
			priority:  "Urgent",
		},
		{
			name:      "labels embedded in a longer message",
			message:   "Consultation approved.\n  TIMEFRAME: 3 months  \nSee notes.\nPRIORITY: Routine",
			timeframe: "3 months",
			reason:    types.DefaultAppointmentReason,
			priority:  "Routine",
		},
		{
			name:      "lowercase labels still match",
			message:   "timeframe: 10 days\nreason: wound review\npriority: high",
			timeframe: "10 days",
			reason:    "wound review",
			priority:  "high",
		},
		{
			name:      "unlabeled message falls back to defaults",
			message:   "Approved and queued for sync.",
			timeframe: types.DefaultAppointmentTimeframe,
			reason:    types.DefaultAppointmentReason,
			priority:  types.DefaultAppointmentPriority,
		},
		{
			name:      "empty message falls back to defaults",
			message:   "",
			timeframe: types.DefaultAppointmentTimeframe,
			reason:    types.DefaultAppointmentReason,
			priority:  types.DefaultAppointmentPriority,
		},
		{
			name:      "label with empty value falls back",
			message:   "TIMEFRAME:   \nREASON: Check bloods",
			timeframe: types.DefaultAppointmentTimeframe,
			reason:    "Check bloods",
			priority:  types.DefaultAppointmentPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseAppointmentRecommendation(tt.message)
			assert.Equal(t, tt.timeframe, rec.Timeframe)
			assert.Equal(t, tt.reason, rec.Reason)
			assert.Equal(t, tt.priority, rec.Priority)
		})
	}
}
