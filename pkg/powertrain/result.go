package powertrain

import "math"

// PowerFlow is the resolved power at every transmission node for one
// operating point, in watts. Nodes that do not exist in the solved
// architecture are NaN. Sign convention: positive power flows in the nominal
// direction (sources toward propulsors); battery power is positive while
// discharging and negative while charging.
type PowerFlow struct {
	Fuel       float64 // chemical power drawn from fuel
	GasTurbine float64 // shaft power delivered by the gas turbine
	Gearbox    float64 // gearbox branch feeding the primary electric machine
	Shaft1     float64 // mechanical power on the primary shaft
	Electric1  float64 // primary electric machine output (negative: motoring)
	Battery    float64 // battery terminal power (negative: charging)
	Electric2  float64 // secondary electric machine input
	Shaft2     float64 // mechanical power on the secondary shaft
	Propulsor1 float64 // primary propulsive power
	Propulsor2 float64 // secondary propulsive power

	// Propulsive is the net power delivered to the airstream by all
	// propulsors, Propulsor1 + Propulsor2.
	Propulsive float64

	// Realized operating condition. When an input was supplied or pinned the
	// value echoes it; otherwise it is recovered from the solved flow. NaN
	// when undefined (e.g. a ratio whose denominator is zero).
	Throttle           float64
	SuppliedPowerRatio float64
	ShaftPowerRatio    float64

	// FlowCase identifies the power-flow direction combination that solved
	// feasibly (1..9). Zero for the trivial all-zero flow.
	FlowCase int
}

// Node is one labelled PowerFlow entry, in canonical path order.
type Node struct {
	Key   string
	Power float64
}

// Nodes returns every node of the flow, including those absent from the
// architecture (NaN), keyed by path abbreviation.
func (p *PowerFlow) Nodes() []Node {
	return []Node{
		{"f", p.Fuel},
		{"gt", p.GasTurbine},
		{"gb", p.Gearbox},
		{"s1", p.Shaft1},
		{"e1", p.Electric1},
		{"bat", p.Battery},
		{"e2", p.Electric2},
		{"s2", p.Shaft2},
		{"p1", p.Propulsor1},
		{"p2", p.Propulsor2},
		{"p", p.Propulsive},
	}
}

func (p *PowerFlow) setCol(col int, v float64) {
	switch col {
	case colFuel:
		p.Fuel = v
	case colGasTurbine:
		p.GasTurbine = v
	case colGearbox:
		p.Gearbox = v
	case colShaft1:
		p.Shaft1 = v
	case colElectric1:
		p.Electric1 = v
	case colBattery:
		p.Battery = v
	case colElectric2:
		p.Electric2 = v
	case colShaft2:
		p.Shaft2 = v
	case colPropulsor1:
		p.Propulsor1 = v
	case colPropulsor2:
		p.Propulsor2 = v
	}
}

// mask blanks the solution columns the topology has no node for.
func (p *PowerFlow) mask(cols []int) {
	for _, c := range cols {
		p.setCol(c, math.NaN())
	}
}
