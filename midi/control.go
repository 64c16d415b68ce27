// Package midi maps control change messages from a MIDI control surface to
// parameter session actions.
package midi

import (
	"gitlab.com/gomidi/midi/v2"

	"github.com/almarkko/paramnav"
)

// Controls assigns a controller number to each session action.
type Controls struct {
	StepUp        uint8
	StepDown      uint8
	LargeStepUp   uint8
	LargeStepDown uint8
	NextParam     uint8
	PrevParam     uint8
}

var DefaultControls = Controls{
	StepUp:        0x60,
	StepDown:      0x61,
	LargeStepUp:   0x62,
	LargeStepDown: 0x63,
	NextParam:     0x64,
	PrevParam:     0x65,
}

// Surface dispatches incoming MIDI messages to a Session.
type Surface struct {
	session  *paramnav.Session
	controls Controls
}

func NewSurface(session *paramnav.Session, controls Controls) *Surface {
	return &Surface{session: session, controls: controls}
}

// HandleMessage performs the session action assigned to msg and reports
// whether the message was consumed.
func (s *Surface) HandleMessage(msg midi.Message) bool {
	var channel, controller, value uint8
	if !msg.GetControlChange(&channel, &controller, &value) {
		return false
	}
	if value == 0 { // button release
		return false
	}
	switch controller {
	case s.controls.StepUp:
		s.session.Step(true, false)
	case s.controls.StepDown:
		s.session.Step(false, false)
	case s.controls.LargeStepUp:
		s.session.Step(true, true)
	case s.controls.LargeStepDown:
		s.session.Step(false, true)
	case s.controls.NextParam:
		s.session.NextParam()
	case s.controls.PrevParam:
		s.session.PrevParam()
	default:
		return false
	}
	return true
}
