package deck

import (
	"fmt"
	"math"

	"github.com/aeropower/powermap/pkg/atmosphere"
	"github.com/aeropower/powermap/pkg/powertrain"
)

// Unit conversions and fuel properties used to turn node powers into deck
// columns.
const (
	// JetALHV is the lower heating value of Jet-A, J/kg.
	JetALHV = 43.0e6
	// NOxEmissionIndex is NOx mass emitted per unit fuel mass burned.
	NOxEmissionIndex = 0.0148

	newtonToLbf = 0.224809
	kgToLb      = 2.20462
)

// DefaultRamDragLbf is the ram-drag model coefficient: drag at Mach 1, sea
// level.
const DefaultRamDragLbf = 2000.0

// Row is the performance at one grid point, in the deck's column units.
type Row struct {
	ThrustLbf       float64 // gross thrust
	RamDragLbf      float64 // ram drag
	FuelFlowLbHr    float64 // fuel flow
	NOxRateLbHr     float64 // NOx emission rate
	ElectricPowerKW float64 // battery draw (negative while charging)
	ShaftPowerRatio float64
}

// Performance evaluates one grid point into a deck row.
type Performance interface {
	Evaluate(Point) (Row, error)
}

// Model is a Performance backed by the power-transmission solver: thrust from
// propulsive power over flight speed, fuel flow from fuel-path power over the
// fuel heating value, NOx from an emission index on fuel flow, electric power
// from the battery node.
type Model struct {
	Architecture    powertrain.Architecture
	Efficiencies    powertrain.Efficiencies
	InstalledPowerW float64

	// ShaftPowerRatio pins the shaft split for architectures that take one
	// (PTE, SPPH, dual-e). Ignored otherwise.
	ShaftPowerRatio *float64

	// RamDragLbf scales the Mach-squared ram-drag model.
	RamDragLbf float64
}

// NewModel returns a Model with the default ram-drag coefficient.
func NewModel(arch powertrain.Architecture, eff powertrain.Efficiencies, installedPowerW float64) *Model {
	return &Model{
		Architecture:    arch,
		Efficiencies:    eff,
		InstalledPowerW: installedPowerW,
		RamDragLbf:      DefaultRamDragLbf,
	}
}

// Evaluate solves the power balance at pt and converts it to deck units.
func (m *Model) Evaluate(pt Point) (Row, error) {
	op := powertrain.OperatingPoint{Throttle: powertrain.Float(pt.Throttle)}
	if m.Architecture.UsesSuppliedPowerRatio() {
		op.SuppliedPowerRatio = powertrain.Float(pt.SuppliedPowerRatio)
	}
	if m.Architecture.UsesShaftPowerRatio() {
		if m.ShaftPowerRatio == nil {
			return Row{}, fmt.Errorf("deck: the %s architecture needs a shaft power ratio", m.Architecture)
		}
		op.ShaftPowerRatio = powertrain.Float(*m.ShaftPowerRatio)
	}

	flow, err := powertrain.Solve(m.Architecture, m.Efficiencies, op, m.InstalledPowerW)
	if err != nil {
		return Row{}, fmt.Errorf("deck: mach %.2f alt %.0f ft phi %.2f throttle %.2f: %w",
			pt.Mach, pt.AltitudeFt, pt.SuppliedPowerRatio, pt.Throttle, err)
	}

	speed := atmosphere.FlightSpeed(pt.Mach, pt.AltitudeFt)
	fuelFlow := nanToZero(flow.Fuel) / JetALHV * 3600 * kgToLb

	shaftRatio := flow.ShaftPowerRatio
	if math.IsNaN(shaftRatio) {
		shaftRatio = 1.0
	}

	return Row{
		ThrustLbf:       flow.Propulsive / speed * newtonToLbf,
		RamDragLbf:      m.RamDragLbf * pt.Mach * pt.Mach * (1 - pt.AltitudeFt/100000.0),
		FuelFlowLbHr:    fuelFlow,
		NOxRateLbHr:     NOxEmissionIndex * fuelFlow,
		ElectricPowerKW: nanToZero(flow.Battery) / 1e3,
		ShaftPowerRatio: shaftRatio,
	}, nil
}

func nanToZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
