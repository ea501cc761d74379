package atmosphere

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperatureK(t *testing.T) {
	assert.InDelta(t, 288.15, TemperatureK(0), 1e-9)
	assert.InDelta(t, 288.15-0.0065*5000, TemperatureK(5000), 1e-9)
	// Isothermal above the tropopause.
	assert.InDelta(t, 216.65, TemperatureK(11000), 1e-9)
	assert.InDelta(t, 216.65, TemperatureK(20000), 1e-9)
}

func TestSpeedOfSound(t *testing.T) {
	// Sea level: sqrt(1.4 * 287.05 * 288.15) ~ 340.3 m/s.
	assert.InDelta(t, 340.3, SpeedOfSound(0), 0.1)
	// Stratosphere: sqrt(1.4 * 287.05 * 216.65) ~ 295.07 m/s.
	assert.InDelta(t, math.Sqrt(1.4*287.05*216.65), SpeedOfSound(15000), 1e-9)
}

func TestFlightSpeed(t *testing.T) {
	// Static and slow points are floored.
	assert.Equal(t, MinFlightSpeedMS, FlightSpeed(0, 0))
	assert.Equal(t, MinFlightSpeedMS, FlightSpeed(0.1, 0))

	// Mach 0.8 at sea level is well above the floor.
	v := FlightSpeed(0.8, 0)
	assert.InDelta(t, 0.8*340.3, v, 0.1)

	// Colder air aloft is slower sound.
	assert.Less(t, FlightSpeed(0.8, 37000), v)
}
