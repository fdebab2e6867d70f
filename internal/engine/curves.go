package engine

import (
	"strconv"
	"time"
)

// DefaultPriceCeiling is the rental price treated as "too expensive to
// matter" by the sensitivity curve.
const DefaultPriceCeiling = 10.0

// PriceSensitivity maps a rental price onto [0,1]; cheaper is higher.
// A non-positive ceiling yields 0.
func PriceSensitivity(price, ceiling float64) float64 {
	if ceiling <= 0 {
		return 0
	}
	return 1 - min(1, price/ceiling)
}

// RecencyBias maps a release date string onto a step curve favoring
// newer movies. The year is taken from the last 4 characters of the
// date (OMDb's "02 Jan 2006" shape), matching the upstream format.
func RecencyBias(released string, now time.Time) float64 {
	if len(released) < 4 {
		return 0.1
	}
	year, err := strconv.Atoi(released[len(released)-4:])
	if err != nil {
		return 0.1
	}

	age := now.Year() - year
	switch {
	case age <= 1:
		return 1.0
	case age <= 5:
		return 0.8
	case age <= 10:
		return 0.6
	case age <= 20:
		return 0.3
	default:
		return 0.1
	}
}
