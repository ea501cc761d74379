package powertrain

import "errors"

var (
	// ErrConfiguration indicates that the operating point does not match the
	// architecture: the wrong number of operating inputs was supplied, an
	// input was supplied that the architecture pins internally, or mutually
	// exclusive inputs were combined.
	ErrConfiguration = errors.New("powertrain: invalid operating configuration")

	// ErrDomain indicates an input value outside its physically valid range
	// (efficiency outside (0,1], ratio or throttle outside [0,1], negative
	// power).
	ErrDomain = errors.New("powertrain: input outside physical range")

	// ErrNoSolution indicates that no admissible power-flow direction yields
	// a sign-consistent solution for the given operating point.
	ErrNoSolution = errors.New("powertrain: no feasible power flow")
)
