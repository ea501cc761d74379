// Package powertrain resolves the power flow through hybrid-electric
// aircraft propulsion architectures. It is designed to feed deck/mapping
// generators (see pkg/deck) with per-node powers over a sweep of operating
// conditions.
//
// Model
//
// A powertrain is one of nine fixed topologies (Architecture) built from a
// gas turbine, a gearbox, two electric machines, a battery, a power
// management stage and up to two propulsors. Ten power-path variables
// describe one operating point:
//
//	Pf, Pgt, Pgb, Ps1, Pe1, Pbat, Pe2, Ps2, Pp1, Pp2
//
// Seven component balance equations (one per conversion stage, power out =
// efficiency x power in, under an assumed direction for each reversible
// path) plus three operating-condition equations close the system, which is
// solved densely per direction assumption; the first candidate whose signs
// honor its assumption is the answer.
//
// Operating inputs
//
// Each architecture pins some inputs by construction (a conventional layout
// has no battery split to choose) and leaves the rest to the caller:
// supplied power ratio, shaft power ratio, throttle, or propulsive-power
// targets. Exactly DegreesOfFreedom of the admissible inputs must be
// supplied; absence is meaningful, so OperatingPoint fields are pointers.
//
// Errors (errs.go):
//
//	ErrConfiguration : wrong number or kind of operating inputs
//	ErrDomain        : value outside its physical range
//	ErrNoSolution    : no direction assumption balances
//
// Solve is a pure function; calls are independent and safe to run
// concurrently.
package powertrain
