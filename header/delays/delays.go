// Package delays implements the Sphinx hop-delay sampler (C8): drawing
// independent exponential delays and encoding them as saturating 64-bit
// nanosecond counts. The shape of the API - generate n samples from a
// single mean/lambda parameter - is grounded on
// katzenpost-client/path_selection.go's getDelays, which draws the same
// kind of exponential delay sequence for mixnet path selection.
package delays

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Delay is a non-negative hop delay, wire-encoded as nanoseconds.
type Delay uint64

// Duration converts a Delay to a time.Duration.
func (d Delay) Duration() time.Duration {
	return time.Duration(d)
}

// Nanoseconds returns the delay's saturating 64-bit nanosecond count.
func (d Delay) Nanoseconds() uint64 {
	return uint64(d)
}

// Generate draws n independent delays from an exponential distribution
// with the given mean (in nanoseconds).
func Generate(n int, meanNanos float64) []Delay {
	dist := distuv.Exponential{Rate: 1 / meanNanos}

	out := make([]Delay, n)
	for i := range out {
		out[i] = fromNanos(dist.Rand())
	}
	return out
}

// GenerateFromAverageDuration draws n independent delays from an
// exponential distribution whose mean is the given duration.
func GenerateFromAverageDuration(n int, mean time.Duration) []Delay {
	return Generate(n, float64(mean.Nanoseconds()))
}

// fromNanos saturates a float64 nanosecond value into a Delay.
func fromNanos(nanos float64) Delay {
	if nanos <= 0 {
		return 0
	}
	if nanos >= math.MaxUint64 {
		return Delay(math.MaxUint64)
	}
	return Delay(uint64(nanos))
}
