package powertrain

import (
	"fmt"
	"math"
	"strings"
)

// Architecture identifies a hybrid-electric powertrain topology. The
// architecture fixes which power paths exist, which operating inputs a caller
// may supply, and how many of them must be supplied for the power balance to
// close (the degrees of freedom).
type Architecture int

const (
	// Conventional is fuel-only: gas turbine geared to the primary propulsor.
	Conventional Architecture = iota

	// Turboelectric routes all gas-turbine power through the generator and
	// power management to the secondary (electrically driven) propulsor.
	Turboelectric

	// Serial is a turboelectric chain with a battery joining at the power
	// management node.
	Serial

	// Parallel drives the primary shaft from both the gas turbine and a
	// battery-fed electric machine on the same gearbox.
	Parallel

	// PartialTurboelectric (PTE) splits gearbox power between the primary
	// shaft and a generator feeding the secondary propulsor. No battery.
	PartialTurboelectric

	// SerialParallelPartialHybrid (SPPH) combines the serial and parallel
	// paths: battery, both electric machines, and both propulsors.
	SerialParallelPartialHybrid

	// ElectricPrimary (e-1) is battery-only drive of the primary propulsor
	// through the first electric machine and the gearbox.
	ElectricPrimary

	// ElectricSecondary (e-2) is battery-only drive of the secondary
	// propulsor through the second electric machine.
	ElectricSecondary

	// DualElectric (dual-e) is battery-only drive of both propulsors.
	DualElectric
)

// Architectures lists every supported topology in canonical order.
var Architectures = []Architecture{
	Conventional,
	Turboelectric,
	Serial,
	Parallel,
	PartialTurboelectric,
	SerialParallelPartialHybrid,
	ElectricPrimary,
	ElectricSecondary,
	DualElectric,
}

var archNames = map[Architecture]string{
	Conventional:                "conventional",
	Turboelectric:               "turboelectric",
	Serial:                      "serial",
	Parallel:                    "parallel",
	PartialTurboelectric:        "PTE",
	SerialParallelPartialHybrid: "SPPH",
	ElectricPrimary:             "e-1",
	ElectricSecondary:           "e-2",
	DualElectric:                "dual-e",
}

func (a Architecture) String() string {
	if s, ok := archNames[a]; ok {
		return s
	}
	return fmt.Sprintf("architecture(%d)", int(a))
}

// ParseArchitecture maps a topology name ("serial", "PTE", "dual-e", ...) to
// its Architecture. Matching is case-insensitive.
func ParseArchitecture(s string) (Architecture, error) {
	for a, name := range archNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown architecture %q", ErrConfiguration, s)
}

// DegreesOfFreedom reports how many operating inputs must be supplied for
// this architecture.
func (a Architecture) DegreesOfFreedom() int { return a.topology().dof }

// UsesSuppliedPowerRatio reports whether the supplied power ratio is a free
// operating input for this architecture (as opposed to being pinned by the
// topology).
func (a Architecture) UsesSuppliedPowerRatio() bool {
	return a.topology().admits(inSuppliedRatio)
}

// UsesShaftPowerRatio reports whether the shaft power ratio is a free
// operating input for this architecture.
func (a Architecture) UsesShaftPowerRatio() bool {
	return a.topology().admits(inShaftRatio)
}

func (a Architecture) valid() bool {
	_, ok := archNames[a]
	return ok
}

// input identifies one operating input, in the order the solver assembles
// operating-condition equations.
type input int

const (
	inSuppliedRatio input = iota
	inShaftRatio
	inThrottle
	inTotalPower
	inPrimaryPower
	inSecondaryPower
	numInputs
)

// throttleRef says which component the throttle setting scales against the
// installed power.
type throttleRef int

const (
	refGasTurbine throttleRef = iota
	refPrimaryMachine
	refSecondaryMachine
)

// topology is the per-architecture description the solver works from:
// pinned ratios, admissible operating inputs, required degrees of freedom,
// the throttle reference, the power-flow direction cases worth trying, and
// the solution entries that have no physical node in this topology.
type topology struct {
	suppliedRatio float64 // pinned value, NaN when caller-controlled
	shaftRatio    float64 // pinned value, NaN when caller-controlled
	inputs        []input
	dof           int
	ref           throttleRef
	refAllBattery throttleRef // reference once supplied ratio hits exactly 1
	cases         []int       // flow-direction cases, in trial order
	masked        []int       // solution columns absent from this topology
}

func (t topology) admits(in input) bool {
	for _, have := range t.inputs {
		if have == in {
			return true
		}
	}
	return false
}

func (a Architecture) topology() topology {
	switch a {
	case Conventional:
		return conventionalTopology()
	case Turboelectric:
		return turboelectricTopology()
	case Serial:
		return serialTopology()
	case Parallel:
		return parallelTopology()
	case PartialTurboelectric:
		return pteTopology()
	case SerialParallelPartialHybrid:
		return spphTopology()
	case ElectricPrimary:
		return e1Topology()
	case ElectricSecondary:
		return e2Topology()
	case DualElectric:
		return dualETopology()
	}
	panic(fmt.Sprintf("powertrain: no topology for %v", a))
}

// Fuel path only: no battery, everything on the primary shaft.
func conventionalTopology() topology {
	return topology{
		suppliedRatio: 0,
		shaftRatio:    0,
		inputs:        []input{inThrottle, inTotalPower, inPrimaryPower},
		dof:           1,
		ref:           refGasTurbine,
		refAllBattery: refGasTurbine,
		cases:         []int{1},
		masked:        []int{colGearbox, colElectric1, colBattery, colElectric2, colShaft2, colPropulsor2},
	}
}

// All gas-turbine power is converted and sent to the secondary propulsor.
func turboelectricTopology() topology {
	return topology{
		suppliedRatio: 0,
		shaftRatio:    1,
		inputs:        []input{inThrottle, inTotalPower, inSecondaryPower},
		dof:           1,
		ref:           refGasTurbine,
		refAllBattery: refGasTurbine,
		cases:         []int{1},
		masked:        []int{colShaft1, colPropulsor1, colBattery},
	}
}

func serialTopology() topology {
	return topology{
		suppliedRatio: math.NaN(),
		shaftRatio:    1,
		inputs:        []input{inSuppliedRatio, inThrottle, inTotalPower, inSecondaryPower},
		dof:           2,
		ref:           refGasTurbine,
		refAllBattery: refSecondaryMachine,
		cases:         []int{1, 2, 3},
		masked:        []int{colShaft1, colPropulsor1},
	}
}

func parallelTopology() topology {
	return topology{
		suppliedRatio: math.NaN(),
		shaftRatio:    0,
		inputs:        []input{inSuppliedRatio, inThrottle, inTotalPower, inPrimaryPower},
		dof:           2,
		ref:           refGasTurbine,
		refAllBattery: refPrimaryMachine,
		cases:         []int{1, 2, 4, 8},
		masked:        []int{colShaft2, colPropulsor2, colElectric2},
	}
}

func pteTopology() topology {
	return topology{
		suppliedRatio: 0,
		shaftRatio:    math.NaN(),
		inputs:        []input{inShaftRatio, inThrottle, inTotalPower, inPrimaryPower, inSecondaryPower},
		dof:           2,
		ref:           refGasTurbine,
		refAllBattery: refGasTurbine,
		cases:         []int{1, 5, 7},
		masked:        []int{colBattery},
	}
}

func spphTopology() topology {
	return topology{
		suppliedRatio: math.NaN(),
		shaftRatio:    math.NaN(),
		inputs: []input{
			inSuppliedRatio, inShaftRatio, inThrottle,
			inTotalPower, inPrimaryPower, inSecondaryPower,
		},
		dof:           3,
		ref:           refGasTurbine,
		refAllBattery: refSecondaryMachine,
		cases:         []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
	}
}

func e1Topology() topology {
	return topology{
		suppliedRatio: 1,
		shaftRatio:    0,
		inputs:        []input{inThrottle, inTotalPower, inPrimaryPower},
		dof:           1,
		ref:           refPrimaryMachine,
		refAllBattery: refPrimaryMachine,
		cases:         []int{4, 8},
		masked:        []int{colFuel, colGasTurbine, colElectric2, colShaft2, colPropulsor2},
	}
}

func e2Topology() topology {
	return topology{
		suppliedRatio: 1,
		shaftRatio:    1,
		inputs:        []input{inThrottle, inTotalPower, inSecondaryPower},
		dof:           1,
		ref:           refSecondaryMachine,
		refAllBattery: refSecondaryMachine,
		cases:         []int{1, 3},
		masked:        []int{colFuel, colGasTurbine, colGearbox, colShaft1, colPropulsor1, colElectric1},
	}
}

func dualETopology() topology {
	return topology{
		suppliedRatio: 1,
		shaftRatio:    math.NaN(),
		inputs:        []input{inThrottle, inShaftRatio, inTotalPower, inPrimaryPower, inSecondaryPower},
		dof:           2,
		ref:           refPrimaryMachine,
		refAllBattery: refPrimaryMachine,
		cases:         []int{4, 5, 6, 7, 8, 9},
		masked:        []int{colFuel, colGasTurbine},
	}
}
