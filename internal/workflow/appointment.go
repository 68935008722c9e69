package workflow

import (
	"regexp"
	"strings"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// The approval message may carry a labeled appointment recommendation:
//
//	TIMEFRAME: 2 weeks
//	REASON: Review blood pressure response
//	PRIORITY: Routine
var (
	timeframePattern = regexp.MustCompile(`(?im)^\s*TIMEFRAME:\s*(.+)$`)
	reasonPattern    = regexp.MustCompile(`(?im)^\s*REASON:\s*(.+)$`)
	priorityPattern  = regexp.MustCompile(`(?im)^\s*PRIORITY:\s*(.+)$`)
)

// ParseAppointmentRecommendation extracts the labeled fields from the
// free-text approval message. Missing fields fall back to fixed defaults.
func ParseAppointmentRecommendation(message string) *types.AppointmentRecommendation {
	return &types.AppointmentRecommendation{
		Timeframe: matchOrDefault(timeframePattern, message, types.DefaultAppointmentTimeframe),
		Reason:    matchOrDefault(reasonPattern, message, types.DefaultAppointmentReason),
		Priority:  matchOrDefault(priorityPattern, message, types.DefaultAppointmentPriority),
	}
}

func matchOrDefault(pattern *regexp.Regexp, message, fallback string) string {
	match := pattern.FindStringSubmatch(message)
	if match == nil {
		return fallback
	}
	value := strings.TrimSpace(match[1])
	if value == "" {
		return fallback
	}
	return value
}
