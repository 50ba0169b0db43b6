package strength

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// GuessesPerSecond is the assumed attacker throughput.
const GuessesPerSecond = 1e10

const (
	// Instant is reported for zero entropy.
	Instant = "Instant"
	// UnderOneSecond is reported when the search space is exhausted in under a second.
	UnderOneSecond = "< 1 second"
	// Uncrackable is reported once the estimate reaches 10^12 years.
	Uncrackable = "Effectively uncrackable"
)

const (
	minute = 60.0
	hour   = 60 * minute
	day    = 24 * hour
	year   = 365 * day
)

// CrackTime estimates how long exhausting 2^bits guesses takes at
// [GuessesPerSecond].
func CrackTime(bits int) string {
	if bits <= 0 {
		return Instant
	}

	seconds := math.Exp2(float64(bits)) / GuessesPerSecond

	switch {
	case seconds < 1:
		return UnderOneSecond
	case seconds < minute:
		return units(seconds, "second")
	case seconds < hour:
		return units(seconds/minute, "minute")
	case seconds < day:
		return units(seconds/hour, "hour")
	case seconds < year:
		return units(seconds/day, "day")
	}

	years := seconds / year
	switch {
	case years < 1000:
		return units(years, "year")
	case years < 1e12:
		return fmt.Sprintf("10^%d years", int(math.Floor(math.Log10(years))))
	default:
		return Uncrackable
	}
}

// units renders the whole part of v with a comma-grouped count and a
// singular or plural unit.
func units(v float64, unit string) string {
	n := int64(math.Floor(v))
	if n == 1 {
		return "1 " + unit
	}
	return humanize.Comma(n) + " " + unit + "s"
}
