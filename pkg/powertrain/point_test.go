package powertrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatingPoint_Validate(t *testing.T) {
	assert.NoError(t, OperatingPoint{}.validate())
	assert.NoError(t, OperatingPoint{
		SuppliedPowerRatio: Float(0),
		ShaftPowerRatio:    Float(1),
		Throttle:           Float(0.5),
		TotalPropulsive:    Float(0),
	}.validate())

	bad := []OperatingPoint{
		{SuppliedPowerRatio: Float(-0.1)},
		{SuppliedPowerRatio: Float(1.1)},
		{ShaftPowerRatio: Float(math.NaN())},
		{Throttle: Float(2)},
		{TotalPropulsive: Float(-1)},
		{PrimaryPropulsive: Float(math.Inf(1))},
		{SecondaryPropulsive: Float(math.NaN())},
	}
	for _, p := range bad {
		assert.ErrorIs(t, p.validate(), ErrDomain, "%+v", p)
	}
}

func TestOperatingPoint_AbsentVersusZero(t *testing.T) {
	var p OperatingPoint
	assert.False(t, p.has(inThrottle))
	assert.True(t, math.IsNaN(p.value(inThrottle)))

	p.Throttle = Float(0)
	assert.True(t, p.has(inThrottle))
	assert.Zero(t, p.value(inThrottle))
}

func TestEfficiencies_Validate(t *testing.T) {
	assert.NoError(t, Uniform(0.9).validate())
	assert.NoError(t, Uniform(1).validate())

	assert.ErrorIs(t, Uniform(0).validate(), ErrDomain)
	assert.ErrorIs(t, Uniform(1.01).validate(), ErrDomain)
	assert.ErrorIs(t, Uniform(math.NaN()).validate(), ErrDomain)

	e := Uniform(0.9)
	e.PM = -0.5
	assert.ErrorIs(t, e.validate(), ErrDomain)
}
