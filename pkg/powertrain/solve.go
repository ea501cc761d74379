package powertrain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve resolves the power flow through the given architecture at one
// operating point. installedPower is the maximum installed power (W) of the
// throttle reference component (gas turbine or electric machine, depending on
// architecture) and sets the absolute scale of a throttle-driven solve.
//
// The operating point must supply exactly the architecture's degrees of
// freedom, drawn from its admissible inputs; otherwise Solve fails with
// ErrConfiguration. Out-of-range values fail with ErrDomain. An operating
// point for which no admissible flow direction balances fails with
// ErrNoSolution.
//
// Solve is pure: identical inputs produce identical results and nothing is
// retained between calls.
func Solve(arch Architecture, eff Efficiencies, point OperatingPoint, installedPower float64) (*PowerFlow, error) {
	if !arch.valid() {
		return nil, fmt.Errorf("%w: unknown architecture %d", ErrConfiguration, int(arch))
	}
	if err := eff.validate(); err != nil {
		return nil, err
	}
	if err := point.validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(installedPower) || math.IsInf(installedPower, 0) || installedPower < 0 {
		return nil, fmt.Errorf("%w: installed power = %v, want a finite non-negative power",
			ErrDomain, installedPower)
	}

	// Mutually exclusive targets: three propulsive powers pin the shaft split
	// twice over, as does a shaft ratio next to two of them.
	if point.has(inTotalPower) && point.has(inPrimaryPower) && point.has(inSecondaryPower) {
		return nil, fmt.Errorf(
			"%w: total, primary and secondary propulsive power cannot all be specified",
			ErrConfiguration)
	}
	if point.has(inShaftRatio) && countSet(point, inTotalPower, inPrimaryPower, inSecondaryPower) >= 2 {
		return nil, fmt.Errorf(
			"%w: shaft power ratio cannot be combined with two propulsive-power targets",
			ErrConfiguration)
	}

	top := arch.topology()

	supplied := 0
	for in := input(0); in < numInputs; in++ {
		if !point.has(in) {
			continue
		}
		if !top.admits(in) {
			return nil, fmt.Errorf("%w: %s is not an operating input for the %s architecture",
				ErrConfiguration, inputNames[in], arch)
		}
		supplied++
	}
	if supplied != top.dof {
		return nil, fmt.Errorf("%w: the %s architecture requires exactly %d operating input(s), got %d",
			ErrConfiguration, arch, top.dof, supplied)
	}

	// Operating condition with pinned ratios applied; NaN marks "absent".
	phi := top.suppliedRatio
	if point.has(inSuppliedRatio) {
		phi = *point.SuppliedPowerRatio
	}
	shaftRatio := top.shaftRatio
	if point.has(inShaftRatio) {
		shaftRatio = *point.ShaftPowerRatio
	}
	throttle := point.value(inThrottle)
	pTotal := point.value(inTotalPower)
	pPrimary := point.value(inPrimaryPower)
	pSecondary := point.value(inSecondaryPower)

	// On an all-battery split the fuel path carries nothing, so the throttle
	// re-references to the electric machine doing the work.
	ref := top.ref
	if phi == 1 {
		ref = top.refAllBattery
	}

	// No demanded power anywhere: the balance is trivially all-zero.
	if zeroFlowPoint(throttle, installedPower, pTotal, pPrimary, pSecondary) {
		flow := &PowerFlow{}
		finishFlow(flow, phi, shaftRatio, ref, installedPower)
		flow.mask(top.masked)
		return flow, nil
	}

	ocRows, ocRHS := operatingRows(phi, shaftRatio, throttle, pTotal, pPrimary, pSecondary, ref, installedPower)

	b := mat.NewVecDense(numCols, nil)
	for i, v := range ocRHS {
		b.SetVec(numBalanceRows+i, v)
	}

	// Try the architecture's direction cases in order; the first candidate
	// whose signs honor its assumptions is the solution.
	for _, id := range top.cases {
		fc := flowCases[id-1]
		data := make([]float64, 0, numCols*numCols)
		data = append(data, fc.balance(eff)...)
		for _, row := range ocRows {
			data = append(data, row...)
		}

		var x mat.VecDense
		if err := x.SolveVec(mat.NewDense(numCols, numCols, data), b); err != nil {
			// Singular under this direction assumption.
			continue
		}

		sol := make([]float64, numCols)
		finite := true
		for i := range sol {
			sol[i] = x.AtVec(i)
			if math.IsNaN(sol[i]) || math.IsInf(sol[i], 0) {
				finite = false
				break
			}
		}
		if !finite || !fc.feasible(sol) {
			continue
		}

		flow := &PowerFlow{FlowCase: fc.id}
		for c := 0; c < numCols; c++ {
			flow.setCol(c, sol[c])
		}
		flow.Propulsive = sol[colPropulsor1] + sol[colPropulsor2]
		finishFlow(flow, phi, shaftRatio, ref, installedPower)
		flow.mask(top.masked)
		return flow, nil
	}

	return nil, fmt.Errorf("%w: %s architecture at the given operating point", ErrNoSolution, arch)
}

func countSet(p OperatingPoint, ins ...input) int {
	n := 0
	for _, in := range ins {
		if p.has(in) {
			n++
		}
	}
	return n
}

// zeroFlowPoint reports whether nothing demands power: every supplied target
// is zero and the throttle term (throttle x installed power) vanishes.
func zeroFlowPoint(throttle, installedPower, pTotal, pPrimary, pSecondary float64) bool {
	zero := func(v float64) bool { return math.IsNaN(v) || v == 0 }
	if !zero(pTotal) || !zero(pPrimary) || !zero(pSecondary) {
		return false
	}
	if !math.IsNaN(throttle) && throttle != 0 && installedPower != 0 {
		return false
	}
	return true
}

// operatingRows builds the three operating-condition equations that close the
// seven balance equations. Exactly three fire for every architecture: pinned
// ratios plus the caller's degrees of freedom.
func operatingRows(phi, shaftRatio, throttle, pTotal, pPrimary, pSecondary float64,
	ref throttleRef, installedPower float64) ([][]float64, []float64) {
	rows := make([][]float64, 0, 3)
	rhs := make([]float64, 0, 3)
	add := func(row []float64, v float64) {
		rows = append(rows, row)
		rhs = append(rhs, v)
	}

	if !math.IsNaN(phi) {
		// phi*Pf + (phi-1)*Pbat = 0  <=>  Pbat/(Pbat+Pf) = phi
		row := make([]float64, numCols)
		row[colFuel] = phi
		row[colBattery] = phi - 1
		add(row, 0)
	}
	if !math.IsNaN(shaftRatio) {
		// Phi*Ps1 + (Phi-1)*Ps2 = 0  <=>  Ps2/(Ps2+Ps1) = Phi
		row := make([]float64, numCols)
		row[colShaft1] = shaftRatio
		row[colShaft2] = shaftRatio - 1
		add(row, 0)
	}
	if !math.IsNaN(throttle) {
		row := make([]float64, numCols)
		switch ref {
		case refGasTurbine:
			row[colGasTurbine] = 1
		case refPrimaryMachine:
			// EM1 is negative in its motoring direction.
			row[colElectric1] = -1
		case refSecondaryMachine:
			row[colElectric2] = 1
		}
		add(row, throttle*installedPower)
	}
	if !math.IsNaN(pTotal) {
		row := make([]float64, numCols)
		row[colPropulsor1] = 1
		row[colPropulsor2] = 1
		add(row, pTotal)
	}
	if !math.IsNaN(pPrimary) {
		row := make([]float64, numCols)
		row[colPropulsor1] = 1
		add(row, pPrimary)
	}
	if !math.IsNaN(pSecondary) {
		row := make([]float64, numCols)
		row[colPropulsor2] = 1
		add(row, pSecondary)
	}

	for len(rows) < 3 {
		add(make([]float64, numCols), 0)
	}
	return rows, rhs
}

// finishFlow fills the realized operating condition: supplied or pinned
// inputs are echoed, the rest recovered from the solved powers.
func finishFlow(flow *PowerFlow, phi, shaftRatio float64, ref throttleRef, installedPower float64) {
	switch ref {
	case refGasTurbine:
		flow.Throttle = ratioOrNaN(flow.GasTurbine, installedPower)
	case refPrimaryMachine:
		flow.Throttle = ratioOrNaN(-flow.Electric1, installedPower)
	case refSecondaryMachine:
		flow.Throttle = ratioOrNaN(flow.Electric2, installedPower)
	}
	if math.IsNaN(phi) {
		flow.SuppliedPowerRatio = ratioOrNaN(flow.Battery, flow.Battery+flow.Fuel)
	} else {
		flow.SuppliedPowerRatio = phi
	}
	if math.IsNaN(shaftRatio) {
		flow.ShaftPowerRatio = ratioOrNaN(flow.Shaft2, flow.Shaft2+flow.Shaft1)
	} else {
		flow.ShaftPowerRatio = shaftRatio
	}
}

func ratioOrNaN(num, den float64) float64 {
	if math.Abs(den) < 1e-12 {
		return math.NaN()
	}
	return num / den
}
