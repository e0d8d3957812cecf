package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSharpnessScore(t *testing.T) {
	require.InDelta(t, 0.5, sharpnessScore(500), 1e-9)
	require.InDelta(t, 2.0, sharpnessScore(2000), 1e-9) // сверху не ограничена
}

func TestContrastScore(t *testing.T) {
	require.InDelta(t, 0.5, contrastScore(64), 1e-9)
	require.InDelta(t, 1.0, contrastScore(128), 1e-9)
}

func TestNoiseScore_ClampedAtOne(t *testing.T) {
	require.InDelta(t, 0.5, noiseScore(32), 1e-9)
	require.InDelta(t, 1.0, noiseScore(64), 1e-9)
	require.InDelta(t, 1.0, noiseScore(500), 1e-9)
}

func TestBrightnessScore_Triangular(t *testing.T) {
	require.InDelta(t, 1.0, brightnessScore(127.5), 1e-9)
	require.InDelta(t, 0.0, brightnessScore(0), 1e-9)
	require.InDelta(t, 0.0, brightnessScore(255), 1e-9)
	require.InDelta(t, 0.5, brightnessScore(63.75), 1e-9)
}

func TestMedianAbsoluteDeviation(t *testing.T) {
	require.Equal(t, 0.0, medianAbsoluteDeviation(nil))
	require.Equal(t, 0.0, medianAbsoluteDeviation([]float64{7, 7, 7, 7, 7}))

	// медиана 3, отклонения {2,1,0,1,97}, медиана отклонений 1
	require.InDelta(t, 1.0, medianAbsoluteDeviation([]float64{1, 2, 3, 4, 100}), 1e-9)
}

func TestMedianAbsoluteDeviation_DoesNotMutateInput(t *testing.T) {
	samples := []float64{5, 1, 3}
	_ = medianAbsoluteDeviation(samples)
	require.Equal(t, []float64{5, 1, 3}, samples)
}
