package powertrain

import (
	"fmt"
	"math"
)

// Efficiencies holds the conversion efficiency of every power-transmission
// stage. Each value is the fraction of entering power that leaves the stage
// and must lie in (0,1]. All seven stages must be set for every architecture;
// stages a topology does not use carry zero power and their efficiency drops
// out of the solution.
type Efficiencies struct {
	GT  float64 // gas turbine
	GB  float64 // gearbox
	P1  float64 // primary propulsor
	EM1 float64 // primary electric machine (generator in nominal flow)
	PM  float64 // power management and distribution
	EM2 float64 // secondary electric machine
	P2  float64 // secondary propulsor
}

// Uniform returns an Efficiencies with every stage set to eta.
func Uniform(eta float64) Efficiencies {
	return Efficiencies{GT: eta, GB: eta, P1: eta, EM1: eta, PM: eta, EM2: eta, P2: eta}
}

func (e Efficiencies) validate() error {
	stages := []struct {
		name string
		eta  float64
	}{
		{"GT", e.GT}, {"GB", e.GB}, {"P1", e.P1}, {"EM1", e.EM1},
		{"PM", e.PM}, {"EM2", e.EM2}, {"P2", e.P2},
	}
	for _, s := range stages {
		if math.IsNaN(s.eta) || s.eta <= 0 || s.eta > 1 {
			return fmt.Errorf("%w: efficiency %s = %v, want (0,1]", ErrDomain, s.name, s.eta)
		}
	}
	return nil
}
