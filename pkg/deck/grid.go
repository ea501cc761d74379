package deck

import (
	"slices"
)

// Point is one sweep condition.
type Point struct {
	Mach               float64
	AltitudeFt         float64
	SuppliedPowerRatio float64
	Throttle           float64
}

// Grid is the cartesian sweep of operating conditions a deck is generated
// over. Axes are kept sorted ascending.
type Grid struct {
	Machs               []float64
	AltitudesFt         []float64
	SuppliedPowerRatios []float64
	Throttles           []float64
}

// NewGrid builds a Grid from copies of the given axes, sorted ascending.
// An empty supplied-power-ratio axis defaults to a single 1.0 so the deck
// still carries the column.
func NewGrid(machs, altitudesFt, throttles, suppliedPowerRatios []float64) Grid {
	if len(suppliedPowerRatios) == 0 {
		suppliedPowerRatios = []float64{1.0}
	}
	return Grid{
		Machs:               sortedCopy(machs),
		AltitudesFt:         sortedCopy(altitudesFt),
		SuppliedPowerRatios: sortedCopy(suppliedPowerRatios),
		Throttles:           sortedCopy(throttles),
	}
}

func sortedCopy(v []float64) []float64 {
	out := slices.Clone(v)
	slices.Sort(out)
	return out
}

// Len returns the total number of grid points.
func (g Grid) Len() int {
	return len(g.Machs) * len(g.AltitudesFt) * len(g.SuppliedPowerRatios) * len(g.Throttles)
}

// Points enumerates every condition in deck row order: Mach outermost, then
// altitude, then supplied power ratio, then throttle.
func (g Grid) Points() []Point {
	pts := make([]Point, 0, g.Len())
	for _, mach := range g.Machs {
		for _, alt := range g.AltitudesFt {
			for _, phi := range g.SuppliedPowerRatios {
				for _, throttle := range g.Throttles {
					pts = append(pts, Point{
						Mach:               mach,
						AltitudeFt:         alt,
						SuppliedPowerRatio: phi,
						Throttle:           throttle,
					})
				}
			}
		}
	}
	return pts
}
