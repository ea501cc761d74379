package powertrain

import (
	"fmt"
	"math"
)

// Float returns a pointer to v, for filling optional OperatingPoint fields.
func Float(v float64) *float64 { return &v }

// OperatingPoint carries the operating inputs for one solve. Absent (nil) and
// zero are different things: only non-nil fields count toward the
// architecture's degrees of freedom, and supplying a field the architecture
// pins internally is a configuration error.
//
// Callers normally drive the point with the three controls (ratios and
// throttle). The three propulsive-power targets are an alternative way to
// close the same balance, e.g. a required total propulsive power instead of a
// throttle; they draw on the same degrees-of-freedom budget.
type OperatingPoint struct {
	// SuppliedPowerRatio is the battery share of total source power,
	// P_bat / (P_bat + P_fuel), in [0,1].
	SuppliedPowerRatio *float64

	// ShaftPowerRatio is the secondary-shaft share of total shaft power,
	// P_s2 / (P_s2 + P_s1), in [0,1].
	ShaftPowerRatio *float64

	// Throttle is the normalized demand on the reference component
	// (gas turbine or electric machine, depending on architecture), in [0,1].
	Throttle *float64

	// TotalPropulsive is the demanded total propulsive power in watts.
	TotalPropulsive *float64

	// PrimaryPropulsive is the demanded primary-propulsor power in watts.
	PrimaryPropulsive *float64

	// SecondaryPropulsive is the demanded secondary-propulsor power in watts.
	SecondaryPropulsive *float64
}

func (p OperatingPoint) field(in input) *float64 {
	switch in {
	case inSuppliedRatio:
		return p.SuppliedPowerRatio
	case inShaftRatio:
		return p.ShaftPowerRatio
	case inThrottle:
		return p.Throttle
	case inTotalPower:
		return p.TotalPropulsive
	case inPrimaryPower:
		return p.PrimaryPropulsive
	case inSecondaryPower:
		return p.SecondaryPropulsive
	}
	return nil
}

// value returns the input as a float, NaN when absent.
func (p OperatingPoint) value(in input) float64 {
	if f := p.field(in); f != nil {
		return *f
	}
	return math.NaN()
}

func (p OperatingPoint) has(in input) bool { return p.field(in) != nil }

var inputNames = [numInputs]string{
	inSuppliedRatio:  "supplied power ratio",
	inShaftRatio:     "shaft power ratio",
	inThrottle:       "throttle setting",
	inTotalPower:     "total propulsive power",
	inPrimaryPower:   "primary propulsive power",
	inSecondaryPower: "secondary propulsive power",
}

// validate range-checks every supplied field. Ratios and throttle live in
// [0,1]; power targets must be finite and non-negative.
func (p OperatingPoint) validate() error {
	for _, in := range []input{inSuppliedRatio, inShaftRatio, inThrottle} {
		f := p.field(in)
		if f == nil {
			continue
		}
		if math.IsNaN(*f) || *f < 0 || *f > 1 {
			return fmt.Errorf("%w: %s = %v, want [0,1]", ErrDomain, inputNames[in], *f)
		}
	}
	for _, in := range []input{inTotalPower, inPrimaryPower, inSecondaryPower} {
		f := p.field(in)
		if f == nil {
			continue
		}
		if math.IsNaN(*f) || math.IsInf(*f, 0) || *f < 0 {
			return fmt.Errorf("%w: %s = %v, want a finite non-negative power", ErrDomain, inputNames[in], *f)
		}
	}
	return nil
}
