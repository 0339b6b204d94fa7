package delays

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateProducesRequestedCount(t *testing.T) {
	require := require.New(t)

	ds := Generate(5, 1e6)
	require.Len(ds, 5)
}

func TestGenerateMeanIsApproximatelyCorrect(t *testing.T) {
	require := require.New(t)

	const mean = 1e6 // 1ms, in nanoseconds
	const n = 20000

	ds := Generate(n, mean)

	var sum float64
	for _, d := range ds {
		sum += float64(d.Nanoseconds())
	}
	got := sum / n

	// Exponential samples are noisy; allow a generous band around the mean.
	require.InDelta(mean, got, mean*0.1)
}

func TestFromNanosSaturates(t *testing.T) {
	require := require.New(t)

	require.Equal(Delay(0), fromNanos(-1))
	require.Equal(Delay(math.MaxUint64), fromNanos(math.MaxUint64*2))
}

func TestGenerateFromAverageDurationZeroMeanGivesZeroDelays(t *testing.T) {
	require := require.New(t)

	ds := GenerateFromAverageDuration(3, 0)
	require.Len(ds, 3)
	for _, d := range ds {
		require.Equal(Delay(0), d)
	}
}
