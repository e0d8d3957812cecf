package vision

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Нормировочные константы метрик качества.
const (
	sharpnessScale = 1000
	contrastScale  = 128
	noiseScale     = 64
	intensityMax   = 255
)

// sharpnessScore нормирует дисперсию лапласиана.
func sharpnessScore(laplacianVariance float64) float64 {
	return laplacianVariance / sharpnessScale
}

// contrastScore нормирует стандартное отклонение яркости.
func contrastScore(stdDev float64) float64 {
	return stdDev / contrastScale
}

// noiseScore нормирует медианное абсолютное отклонение, не больше 1.0.
func noiseScore(mad float64) float64 {
	return math.Min(mad/noiseScale, 1.0)
}

// brightnessScore треугольная оценка: максимум при средней яркости 127.5,
// линейный спад к нулю на чисто чёрном и чисто белом снимке.
func brightnessScore(meanIntensity float64) float64 {
	return 1 - math.Abs(meanIntensity/intensityMax-0.5)*2
}

// medianAbsoluteDeviation медианное абсолютное отклонение от медианы выборки.
func medianAbsoluteDeviation(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	deviations := make([]float64, len(sorted))
	for i, v := range sorted {
		deviations[i] = math.Abs(v - median)
	}
	sort.Float64s(deviations)

	return stat.Quantile(0.5, stat.Empirical, deviations, nil)
}
