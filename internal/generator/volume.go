package generator

import "math"

// Default monthly unit bounds for the volume model.
const (
	DefaultMinMonthlyUnits = 1.0
	DefaultMaxMonthlyUnits = 15.0

	// fallbackUnitBound is used for months whose volume entry is absent,
	// zero, or floors below one.
	fallbackUnitBound = 6
)

var monthKeys = [12]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// MonthlyVolumes draws one transaction-volume upper bound per calendar month,
// uniform in [minUnits, maxUnits) and rounded to precision decimal digits.
// Draws are independent; there is no cross-month correlation.
func MonthlyVolumes(rng Rand, minUnits, maxUnits float64, precision int) map[string]float64 {
	pow := math.Pow(10, float64(precision))
	volumes := make(map[string]float64, len(monthKeys))
	for _, key := range monthKeys {
		v := minUnits + rng.Float64()*(maxUnits-minUnits)
		volumes[key] = math.Round(v*pow) / pow
	}
	return volumes
}

// UnitBound floors the month's volume into the integer unit bound the
// synthesizer consumes. Month is 1-based.
func UnitBound(volumes map[string]float64, month int) int {
	v, ok := volumes[monthKeys[month-1]]
	if !ok {
		return fallbackUnitBound
	}
	bound := int(math.Floor(v))
	if bound < 1 {
		return fallbackUnitBound
	}
	return bound
}
