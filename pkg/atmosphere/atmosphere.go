// Package atmosphere provides the small slice of the International Standard
// Atmosphere the deck generator needs: static temperature, speed of sound,
// and a thrust-reference flight speed.
package atmosphere

import "math"

const (
	// SeaLevelTempK is the ISA sea-level static temperature.
	SeaLevelTempK = 288.15
	// LapseRateKPerM is the tropospheric temperature lapse rate.
	LapseRateKPerM = 0.0065
	// TropopauseAltM is the altitude above which temperature is held constant.
	TropopauseAltM = 11000.0
	// TropopauseTempK is the constant temperature above the tropopause.
	TropopauseTempK = 216.65

	gammaAir = 1.4    // ratio of specific heats
	rAir     = 287.05 // specific gas constant, J/(kg K)

	// MinFlightSpeedMS floors the thrust-reference speed so static points do
	// not divide propulsive power by zero.
	MinFlightSpeedMS = 50.0

	// FtToM converts feet to meters.
	FtToM = 0.3048
)

// TemperatureK returns the ISA static temperature at a geometric altitude in
// meters. Altitudes above the tropopause use the isothermal layer value.
func TemperatureK(altitudeM float64) float64 {
	if altitudeM <= TropopauseAltM {
		return SeaLevelTempK - LapseRateKPerM*altitudeM
	}
	return TropopauseTempK
}

// SpeedOfSound returns the speed of sound in m/s at a geometric altitude in
// meters.
func SpeedOfSound(altitudeM float64) float64 {
	return math.Sqrt(gammaAir * rAir * TemperatureK(altitudeM))
}

// FlightSpeed returns the thrust-reference flight speed in m/s for a Mach
// number at an altitude in feet, floored at MinFlightSpeedMS.
func FlightSpeed(mach, altitudeFt float64) float64 {
	v := mach * SpeedOfSound(altitudeFt*FtToM)
	return math.Max(v, MinFlightSpeedMS)
}
