package paramnav_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almarkko/paramnav"
	"github.com/almarkko/paramnav/hosttest"
)

func volumeSession() (*paramnav.Session, *hosttest.Track, *hosttest.Log) {
	track := &hosttest.Track{
		Fields: hosttest.Fields{"D_VOL": 1.0, "D_PAN": 0.0, "B_MUTE": 0},
	}
	log := &hosttest.Log{}
	return paramnav.NewSession(paramnav.NewTrackParams(track), log), track, log
}

func TestSessionInitialState(t *testing.T) {
	s, _, log := volumeSession()
	assert.Equal(t, "Track Parameters", s.Title())
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []string{"volume", "pan", "mute"}, s.ParamNames())
	assert.Equal(t, 0, s.Selected())
	assert.Equal(t, "0.0 dB", s.ValueText())
	// Opening the session announces nothing.
	assert.Empty(t, log.Messages)
}

func TestSessionStepSnapsToNewText(t *testing.T) {
	s, track, log := volumeSession()
	// One 0.002 step from unity is under half of 0.1 dB; the session keeps
	// searching until the displayed text actually changes.
	s.Step(true, false)
	assert.Equal(t, "0.1 dB", s.ValueText())
	assert.InDelta(t, 1.006, s.Value(), 1e-9)
	assert.InDelta(t, 1.006, track.Fields["D_VOL"], 1e-9)
	assert.Equal(t, "0.1 dB", log.Last())

	s.Step(false, false)
	assert.Equal(t, "0.0 dB", s.ValueText())
}

func TestSessionStepLarge(t *testing.T) {
	s, _, _ := volumeSession()
	s.Step(true, true)
	assert.InDelta(t, 1.1, s.Value(), 1e-9)
	assert.Equal(t, "0.8 dB", s.ValueText())
}

func TestSessionStepClampsAtBoundary(t *testing.T) {
	s, track, _ := volumeSession()
	s.SetToMax()
	require.Equal(t, "12.0 dB", s.ValueText())
	// Stepping past the end clamps and commits instead of overshooting.
	s.Step(true, true)
	assert.Equal(t, 4.0, s.Value())
	assert.Equal(t, 4.0, track.Fields["D_VOL"])
	assert.Equal(t, "12.0 dB", s.ValueText())

	s.SetToMin()
	s.Step(false, false)
	assert.Equal(t, 0.0, s.Value())
	assert.Equal(t, "-inf dB", s.ValueText())
}

func TestSessionPercentageFallback(t *testing.T) {
	chain := &hosttest.Chain{Fx: []*hosttest.Fx{{
		Name:        "VST: Synth (Vendor)",
		Unformatted: true,
		Params:      []hosttest.FxParam{{Name: "A", Min: 0, Max: 2, Value: 0.5}},
	}}}
	log := &hosttest.Log{}
	s := paramnav.NewSession(paramnav.NewFxParams(chain, 0), log)
	assert.Equal(t, "25.0%", s.ValueText())
	// Without display text there is nothing to snap to; a single step is
	// taken as is.
	s.Step(true, false)
	assert.InDelta(t, 0.502, s.Value(), 1e-9)
	assert.Equal(t, "25.1%", s.ValueText())
}

func TestSessionCycleParams(t *testing.T) {
	s, _, log := volumeSession()
	s.NextParam()
	assert.Equal(t, 1, s.Selected())
	assert.Equal(t, "pan, center", log.Last())
	s.NextParam()
	s.NextParam() // wraps
	assert.Equal(t, 0, s.Selected())
	assert.Equal(t, "volume, 0.0 dB", log.Last())
	s.PrevParam() // wraps back
	assert.Equal(t, 2, s.Selected())
	assert.Equal(t, "mute, off", log.Last())
	// The combined announcement replaces the bare value one.
	assert.Len(t, log.Messages, 4)
}

func TestSessionFilter(t *testing.T) {
	s, _, _ := volumeSession()
	s.SetFilter("PA")
	assert.Equal(t, []string{"pan"}, s.ParamNames())
	assert.Equal(t, "center", s.ValueText())
	s.SetFilter("xyz")
	assert.Equal(t, 0, s.Count())
	assert.Nil(t, s.Param())
	s.SetFilter("")
	assert.Equal(t, 3, s.Count())
}

func TestSessionFilterKeepsSelection(t *testing.T) {
	s, _, _ := volumeSession()
	s.SetSelected(1) // pan
	s.SetFilter("p")
	assert.Equal(t, []string{"pan"}, s.ParamNames())
	assert.Equal(t, 0, s.Selected())
	s.SetFilter("")
	// The same parameter stays selected once the filter is lifted.
	assert.Equal(t, 1, s.Selected())
}

func TestSessionHidesUnnamedParams(t *testing.T) {
	chain := &hosttest.Chain{Fx: []*hosttest.Fx{{
		Name: "VST: Synth (Vendor)",
		Params: []hosttest.FxParam{
			{Name: "Cutoff"},
			{Name: "P003"},
			{Name: "-"},
			{Name: ""},
		},
	}}}
	s := paramnav.NewSession(paramnav.NewFxParams(chain, 0), nil)
	require.Equal(t, 4, s.Count())
	s.SetShowUnnamed(false)
	assert.Equal(t, []string{"Cutoff (0)"}, s.ParamNames())
	s.SetShowUnnamed(true)
	assert.Equal(t, 4, s.Count())
}

func TestSessionSubmitEdit(t *testing.T) {
	s, track, _ := volumeSession()
	s.SubmitEdit("-6 dB")
	assert.InDelta(t, 0.501187233627272, s.Value(), 1e-9)
	assert.Equal(t, "-6.0 dB", s.ValueText())
	assert.Equal(t, "-6.0 dB", s.EditText())

	// Values beyond the slider range are written through; the host decides.
	s.SubmitEdit("18")
	assert.Greater(t, track.Fields["D_VOL"], 4.0)
	assert.Equal(t, "18.0 dB", s.ValueText())
}

func TestSessionSubmitEditIgnored(t *testing.T) {
	s, track, _ := volumeSession()
	s.SubmitEdit("")
	assert.Equal(t, 1.0, track.Fields["D_VOL"])

	s.SetSelected(2) // mute is not editable
	assert.False(t, s.Editable())
	s.SubmitEdit("1")
	assert.Equal(t, 0.0, track.Fields["B_MUTE"])
}

func TestSessionRandomOps(t *testing.T) {
	chain := &hosttest.Chain{Fx: []*hosttest.Fx{{
		Name: "VST: Synth (Vendor)",
		Params: []hosttest.FxParam{
			{Name: "Cutoff", Min: 0, Max: 1, Value: 0.5, Decimals: 2},
			{Name: "Resonance", Min: 0, Max: 1, Value: 0.1, Decimals: 1},
			{Name: "Drive", Min: -12, Max: 12, Step: 0.5, Decimals: 1, Unit: " dB"},
		},
	}}}
	s := paramnav.NewSession(paramnav.NewFxParams(chain, 0), &hosttest.Log{})
	ops := []func(){
		func() { s.Step(true, false) },
		func() { s.Step(false, false) },
		func() { s.Step(true, true) },
		func() { s.Step(false, true) },
		func() { s.NextParam() },
		func() { s.PrevParam() },
		func() { s.SetToMin() },
		func() { s.SetToMax() },
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		ops[rng.Intn(len(ops))]()
		p := s.Param()
		require.NotNil(t, p)
		require.LessOrEqual(t, p.Min(), p.Max())
		require.Greater(t, p.Step(), 0.0)
		require.GreaterOrEqual(t, s.Value(), p.Min())
		require.LessOrEqual(t, s.Value(), p.Max())
		require.NotEmpty(t, s.ValueText())
		require.Less(t, s.Selected(), s.Count())
	}
}
