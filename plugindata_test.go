package paramnav_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almarkko/paramnav"
	"github.com/almarkko/paramnav/hosttest"
)

func TestLoadPluginTables(t *testing.T) {
	fsys := fstest.MapFS{"gate.yml": &fstest.MapFile{Data: []byte(`
fxName: "VST: Gate (Vendor)"
probeKey: GATEMODE%d
perBand:
  - displayName: Gate %d mode
    key: GATEMODE%d
    options:
      - { label: fast, token: "0" }
      - { label: slow, token: "1" }
`)}}
	require.NoError(t, paramnav.LoadPluginTables(fsys))

	chain := &hosttest.Chain{Fx: []*hosttest.Fx{{
		Name:   "VST: Gate (Vendor)",
		Config: map[string]string{"GATEMODE0": "1"},
	}}}
	s := paramnav.NewFxParams(chain, 0)
	require.Equal(t, 1, s.ParamCount())
	assert.Equal(t, "Gate 1 mode (0)", s.ParamName(0))
	p := s.Param(0)
	assert.Equal(t, 1.0, p.Value())
	assert.Equal(t, "slow", p.ValueText(p.Value()))
}

func TestLoadPluginTablesBadFile(t *testing.T) {
	fsys := fstest.MapFS{"bad.yml": &fstest.MapFile{Data: []byte("perBand: {not: [a, list")}}
	assert.Error(t, paramnav.LoadPluginTables(fsys))
}
