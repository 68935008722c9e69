package workflow

import (
	"fmt"

	"github.com/israel77-1995/Nocta-system/pkg/interfaces"
	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// transitions is the complete navigation map. Every edge the product
// supports is listed here; anything else is an invalid transition.
var transitions = map[types.Screen]map[types.Action]types.Screen{
	types.ScreenLogin: {
		types.ActionLogin: types.ScreenDashboard,
	},
	types.ScreenDashboard: {
		types.ActionSelectPatient: types.ScreenSummary,
		types.ActionViewHistory:   types.ScreenHistory,
		types.ActionLogout:        types.ScreenLogin,
	},
	types.ScreenSummary: {
		types.ActionStartConsultation: types.ScreenConsultation,
		types.ActionBackToDashboard:   types.ScreenDashboard,
	},
	types.ScreenConsultation: {
		types.ActionSubmit:          types.ScreenResults,
		types.ActionOpenImageModal:  types.ScreenImageModal,
		types.ActionBackToDashboard: types.ScreenDashboard,
		types.ActionLogout:          types.ScreenLogin, // session expiry
	},
	types.ScreenImageModal: {
		types.ActionCloseImageModal: types.ScreenConsultation,
	},
	types.ScreenResults: {
		types.ActionBackToDashboard:    types.ScreenDashboard,
		types.ActionBackToConsultation: types.ScreenConsultation,
		types.ActionLogout:             types.ScreenLogin, // session expiry
	},
	types.ScreenHistory: {
		types.ActionOpenRecord:      types.ScreenResults,
		types.ActionBackToDashboard: types.ScreenDashboard,
	},
}

// Navigator maps workflow stages to the single visible screen. It is a
// finite state machine over the fixed transition table above, not a
// history stack.
type Navigator struct {
	current types.Screen
	display interfaces.Display
}

// NewNavigator creates a navigator starting on the login screen.
func NewNavigator(display interfaces.Display) *Navigator {
	return &Navigator{
		current: types.ScreenLogin,
		display: display,
	}
}

// Current returns the active screen.
func (n *Navigator) Current() types.Screen {
	return n.current
}

// Apply follows the named edge from the current screen. Undefined
// transitions leave the screen unchanged and return an error.
func (n *Navigator) Apply(action types.Action) (types.Screen, error) {
	edges, ok := transitions[n.current]
	if !ok {
		return n.current, types.NewValidationError(types.ErrCodeInvalidTransition,
			fmt.Sprintf("no transitions from screen %q", n.current))
	}

	next, ok := edges[action]
	if !ok {
		return n.current, types.NewValidationError(types.ErrCodeInvalidTransition,
			fmt.Sprintf("action %q is not valid on screen %q", action, n.current))
	}

	n.show(next)
	return next, nil
}

// show deactivates every other screen and activates exactly one.
func (n *Navigator) show(screen types.Screen) {
	n.current = screen
	n.display.ScreenChanged(screen)
}
