package types

import (
	"fmt"
	"math"
)

// Watts is a float64 wrapper representing power in watts.
type Watts float64

// Humanized returns a human-readable string with automatic unit (W, kW, MW, GW).
func (w Watts) Humanized() string {
	if math.IsNaN(float64(w)) {
		return "-"
	}
	abs := math.Abs(float64(w))
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.2f GW", float64(w)/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2f MW", float64(w)/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2f kW", float64(w)/1e3)
	default:
		return fmt.Sprintf("%.1f W", float64(w))
	}
}

// KW returns the power in kilowatts.
func (w Watts) KW() float64 { return float64(w) / 1e3 }

// MW returns the power in megawatts.
func (w Watts) MW() float64 { return float64(w) / 1e6 }
