package powertrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchitecture(t *testing.T) {
	for _, a := range Architectures {
		parsed, err := ParseArchitecture(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	// Matching ignores case.
	parsed, err := ParseArchitecture("pte")
	require.NoError(t, err)
	assert.Equal(t, PartialTurboelectric, parsed)

	parsed, err = ParseArchitecture("SERIAL")
	require.NoError(t, err)
	assert.Equal(t, Serial, parsed)

	_, err = ParseArchitecture("hybrid")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestArchitecture_DegreesOfFreedom(t *testing.T) {
	dof := map[Architecture]int{
		Conventional:                1,
		Turboelectric:               1,
		Serial:                      2,
		Parallel:                    2,
		PartialTurboelectric:        2,
		SerialParallelPartialHybrid: 3,
		ElectricPrimary:             1,
		ElectricSecondary:           1,
		DualElectric:                2,
	}
	for a, want := range dof {
		assert.Equal(t, want, a.DegreesOfFreedom(), "%s", a)
	}
}

func TestArchitecture_Capabilities(t *testing.T) {
	tests := []struct {
		arch     Architecture
		supplied bool
		shaft    bool
	}{
		{Conventional, false, false},
		{Turboelectric, false, false},
		{Serial, true, false},
		{Parallel, true, false},
		{PartialTurboelectric, false, true},
		{SerialParallelPartialHybrid, true, true},
		{ElectricPrimary, false, false},
		{ElectricSecondary, false, false},
		{DualElectric, false, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.supplied, tc.arch.UsesSuppliedPowerRatio(), "%s supplied", tc.arch)
		assert.Equal(t, tc.shaft, tc.arch.UsesShaftPowerRatio(), "%s shaft", tc.arch)
	}
}

func TestArchitecture_String(t *testing.T) {
	assert.Equal(t, "serial", Serial.String())
	assert.Equal(t, "dual-e", DualElectric.String())
	assert.Equal(t, "architecture(42)", Architecture(42).String())
}
