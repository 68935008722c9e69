package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

func TestNavigator_HappyPath(t *testing.T) {
	display := newFakeDisplay()
	nav := NewNavigator(display)

	assert.Equal(t, types.ScreenLogin, nav.Current())

	steps := []struct {
		action types.Action
		want   types.Screen
	}{
		{types.ActionLogin, types.ScreenDashboard},
		{types.ActionSelectPatient, types.ScreenSummary},
		{types.ActionStartConsultation, types.ScreenConsultation},
		{types.ActionOpenImageModal, types.ScreenImageModal},
		{types.ActionCloseImageModal, types.ScreenConsultation},
		{types.ActionSubmit, types.ScreenResults},
		{types.ActionBackToConsultation, types.ScreenConsultation},
		{types.ActionBackToDashboard, types.ScreenDashboard},
		{types.ActionViewHistory, types.ScreenHistory},
		{types.ActionOpenRecord, types.ScreenResults},
		{types.ActionBackToDashboard, types.ScreenDashboard},
		{types.ActionLogout, types.ScreenLogin},
	}

	for _, step := range steps {
		got, err := nav.Apply(step.action)
		assert.NoError(t, err, "action %s", step.action)
		assert.Equal(t, step.want, got)
		assert.Equal(t, step.want, nav.Current())
	}

	// One ScreenChanged notification per transition.
	assert.Len(t, display.screens, len(steps))
}

func TestNavigator_SessionExpiryEdges(t *testing.T) {
	// A dead session can be detected on the consultation and results
	// screens; both must lead straight back to login.
	for _, from := range []types.Screen{types.ScreenConsultation, types.ScreenResults} {
		nav := NewNavigator(newFakeDisplay())
		nav.current = from

		got, err := nav.Apply(types.ActionLogout)

		assert.NoError(t, err, "logout from %s", from)
		assert.Equal(t, types.ScreenLogin, got)
	}
}

func TestNavigator_RejectsUndefinedTransitions(t *testing.T) {
	cases := []struct {
		from   types.Screen
		action types.Action
	}{
		{types.ScreenLogin, types.ActionSubmit},
		{types.ScreenLogin, types.ActionLogout},
		{types.ScreenDashboard, types.ActionSubmit},
		{types.ScreenSummary, types.ActionOpenRecord},
		{types.ScreenImageModal, types.ActionBackToDashboard},
		{types.ScreenResults, types.ActionStartConsultation},
		{types.ScreenHistory, types.ActionLogin},
	}

	for _, tc := range cases {
		nav := NewNavigator(newFakeDisplay())
		nav.current = tc.from

		got, err := nav.Apply(tc.action)

		assert.Error(t, err, "%s on %s", tc.action, tc.from)
		wfErr, ok := err.(*types.WorkflowError)
		assert.True(t, ok)
		assert.Equal(t, types.ErrCodeInvalidTransition, wfErr.Code)

		// The screen does not change on a rejected transition.
		assert.Equal(t, tc.from, got)
		assert.Equal(t, tc.from, nav.Current())
	}
}
