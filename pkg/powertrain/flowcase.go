package powertrain

// Solution vector column order. Every balance matrix row and every result
// field indexes power paths in this order.
const (
	colFuel = iota
	colGasTurbine
	colGearbox
	colShaft1
	colElectric1
	colBattery
	colElectric2
	colShaft2
	colPropulsor1
	colPropulsor2
	numCols
)

// numBalanceRows is the count of component balance equations; together with
// the three operating-condition rows they close the 10x10 system.
const numBalanceRows = 7

// flowCase pins an assumed direction for each reversible power path (primary
// shaft, primary electric machine, battery, secondary electric path) and
// carries the component balance equations valid under that assumption. A
// solved candidate is kept only when its signs honor the assumption.
type flowCase struct {
	id       int
	s1Rev    bool // primary shaft back-driven by its propulsor
	e1Motor  bool // primary electric machine motoring instead of generating
	batCharg bool // battery absorbing power
	e2Rev    bool // secondary electric path running in reverse
	balance  func(e Efficiencies) []float64 // numBalanceRows * numCols, row-major
}

// flowCases holds the nine direction combinations, indexed by id-1.
// Architectures select a subset and a trial order.
var flowCases = [9]flowCase{
	// 1: nominal. GT drives the gearbox, EM1 generates, battery discharges,
	// EM2 motors the secondary propulsor.
	{id: 1, balance: func(e Efficiencies) []float64 {
		return []float64{
			-e.GT, 1, 0, 0, 0, 0, 0, 0, 0, 0,
			0, -e.GB, 1, 1, 0, 0, 0, 0, 0, 0,
			0, 0, 0, -e.P1, 0, 0, 0, 0, 1, 0,
			0, 0, -e.EM1, 0, 1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, -e.PM, -e.PM, 1, 0, 0, 0,
			0, 0, 0, 0, 0, 0, -e.EM2, 1, 0, 0,
			0, 0, 0, 0, 0, 0, 0, -e.P2, 0, 1,
		}
	}},

	// 2: as nominal but the battery charges from the bus.
	{id: 2, batCharg: true, balance: func(e Efficiencies) []float64 {
		return []float64{
			-e.GT, 1, 0, 0, 0, 0, 0, 0, 0, 0,
			0, -e.GB, 1, 1, 0, 0, 0, 0, 0, 0,
			0, 0, 0, -e.P1, 0, 0, 0, 0, 1, 0,
			0, 0, -e.EM1, 0, 1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, -e.PM, -1, 1, 0, 0, 0,
			0, 0, 0, 0, 0, 0, -e.EM2, 1, 0, 0,
			0, 0, 0, 0, 0, 0, 0, -e.P2, 0, 1,
		}
	}},

	// 3: battery charges and the secondary path runs in reverse (propulsor 2
	// windmilling back through EM2).
	{id: 3, batCharg: true, e2Rev: true, balance: func(e Efficiencies) []float64 {
		return []float64{
			-e.GT, 1, 0, 0, 0, 0, 0, 0, 0, 0,
			0, -e.GB, 1, 1, 0, 0, 0, 0, 0, 0,
			0, 0, 0, -e.P1, 0, 0, 0, 0, 1, 0,
			0, 0, -e.EM1, 0, 1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, -e.PM, -1, e.PM, 0, 0, 0,
			0, 0, 0, 0, 0, 0, -1, e.EM2, 0, 0,
			0, 0, 0, 0, 0, 0, 0, -1, 0, e.P2,
		}
	}},

	// 4: EM1 motors the gearbox from the bus (battery assist on the primary
	// shaft).
	{id: 4, e1Motor: true, balance: func(e Efficiencies) []float64 {
		return []float64{
			-e.GT, 1, 0, 0, 0, 0, 0, 0, 0, 0,
			0, -e.GB, e.GB, 1, 0, 0, 0, 0, 0, 0,
			0, 0, 0, -e.P1, 0, 0, 0, 0, 1, 0,
			0, 0, -1, 0, e.EM1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, -1, -e.PM, 1, 0, 0, 0,
			0, 0, 0, 0, 0, 0, -e.EM2, 1, 0, 0,
			0, 0, 0, 0, 0, 0, 0, -e.P2, 0, 1,
		}
	}},

	// 5: EM1 motors while the secondary path reverses.
	{id: 5, e1Motor: true, e2Rev: true, balance: func(e Efficiencies) []float64 {
		return []float64{
			-e.GT, 1, 0, 0, 0, 0, 0, 0, 0, 0,
			0, -e.GB, e.GB, 1, 0, 0, 0, 0, 0, 0,
			0, 0, 0, -e.P1, 0, 0, 0, 0, 1, 0,
			0, 0, -1, 0, e.EM1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, -1, -e.PM, e.PM, 0, 0, 0,
			0, 0, 0, 0, 0, 0, -1, e.EM2, 0, 0,
			0, 0, 0, 0, 0, 0, 0, -1, 0, e.P2,
		}
	}},

	// 6: EM1 motors, battery charges, secondary path reverses.
	{id: 6, e1Motor: true, batCharg: true, e2Rev: true, balance: func(e Efficiencies) []float64 {
		return []float64{
			-e.GT, 1, 0, 0, 0, 0, 0, 0, 0, 0,
			0, -e.GB, e.GB, 1, 0, 0, 0, 0, 0, 0,
			0, 0, 0, -e.P1, 0, 0, 0, 0, 1, 0,
			0, 0, -1, 0, e.EM1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, -1, -1, e.PM, 0, 0, 0,
			0, 0, 0, 0, 0, 0, -1, e.EM2, 0, 0,
			0, 0, 0, 0, 0, 0, 0, -1, 0, e.P2,
		}
	}},

	// 7: primary propulsor windmills, back-driving shaft 1 into the gearbox.
	{id: 7, s1Rev: true, balance: func(e Efficiencies) []float64 {
		return []float64{
			-e.GT, 1, 0, 0, 0, 0, 0, 0, 0, 0,
			0, -e.GB, 1, e.GB, 0, 0, 0, 0, 0, 0,
			0, 0, 0, -1, 0, 0, 0, 0, e.P1, 0,
			0, 0, -e.EM1, 0, 1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, -e.PM, -e.PM, 1, 0, 0, 0,
			0, 0, 0, 0, 0, 0, -e.EM2, 1, 0, 0,
			0, 0, 0, 0, 0, 0, 0, -e.P2, 0, 1,
		}
	}},

	// 8: shaft 1 reversed and battery charging.
	{id: 8, s1Rev: true, batCharg: true, balance: func(e Efficiencies) []float64 {
		return []float64{
			-e.GT, 1, 0, 0, 0, 0, 0, 0, 0, 0,
			0, -e.GB, 1, e.GB, 0, 0, 0, 0, 0, 0,
			0, 0, 0, -1, 0, 0, 0, 0, e.P1, 0,
			0, 0, -e.EM1, 0, 1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, -e.PM, -1, 1, 0, 0, 0,
			0, 0, 0, 0, 0, 0, -e.EM2, 1, 0, 0,
			0, 0, 0, 0, 0, 0, 0, -e.P2, 0, 1,
		}
	}},

	// 9: shaft 1 reversed, battery charging, secondary path reversed.
	{id: 9, s1Rev: true, batCharg: true, e2Rev: true, balance: func(e Efficiencies) []float64 {
		return []float64{
			-e.GT, 1, 0, 0, 0, 0, 0, 0, 0, 0,
			0, -e.GB, 1, e.GB, 0, 0, 0, 0, 0, 0,
			0, 0, 0, -1, 0, 0, 0, 0, e.P1, 0,
			0, 0, -e.EM1, 0, 1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, -e.PM, -1, e.PM, 0, 0, 0,
			0, 0, 0, 0, 0, 0, -1, e.EM2, 0, 0,
			0, 0, 0, 0, 0, 0, 0, -1, 0, e.P2,
		}
	}},
}

// feasTol absorbs round-off from the dense solve when checking the
// non-negative side of a direction assumption, in watts.
const feasTol = 1e-6

// feasible reports whether a solved candidate honors this case's direction
// assumptions. The gas turbine can never absorb power.
func (fc flowCase) feasible(x []float64) bool {
	if x[colGasTurbine] < -feasTol {
		return false
	}
	checks := []struct {
		col int
		neg bool
	}{
		{colShaft1, fc.s1Rev},
		{colElectric1, fc.e1Motor},
		{colBattery, fc.batCharg},
		{colElectric2, fc.e2Rev},
	}
	for _, c := range checks {
		if c.neg {
			if x[c.col] >= 0 {
				return false
			}
		} else if x[c.col] < -feasTol {
			return false
		}
	}
	return true
}
