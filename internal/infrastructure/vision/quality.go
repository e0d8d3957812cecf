//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"satellite-analyzer/internal/domain/entity"
)

// assessQuality считает метрики качества по чёрно-белой версии снимка.
// Для пустого снимка возвращает фиксированный отчёт по умолчанию.
func assessQuality(mat gocv.Mat) entity.QualityReport {
	if mat.Empty() {
		return entity.DefaultQualityReport()
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	mean := gocv.NewMat()
	defer mean.Close()
	stdDev := gocv.NewMat()
	defer stdDev.Close()
	gocv.MeanStdDev(gray, &mean, &stdDev)

	sharpness := sharpnessScore(laplacianVariance(gray))
	contrast := contrastScore(stdDev.GetDoubleAt(0, 0))
	noise := noiseScore(medianAbsoluteDeviation(graySamples(gray)))
	brightness := brightnessScore(mean.GetDoubleAt(0, 0))

	return entity.NewQualityReport(sharpness, contrast, noise, brightness)
}

// laplacianVariance дисперсия отклика дискретного лапласиана.
func laplacianVariance(gray gocv.Mat) float64 {
	lap := gocv.NewMat()
	defer lap.Close()
	gocv.Laplacian(gray, &lap, gocv.MatTypeCV64F, 1, 1, 0, gocv.BorderDefault)

	mean := gocv.NewMat()
	defer mean.Close()
	stdDev := gocv.NewMat()
	defer stdDev.Close()
	gocv.MeanStdDev(lap, &mean, &stdDev)

	sd := stdDev.GetDoubleAt(0, 0)
	return sd * sd
}

// graySamples выгружает яркости пикселей в срез float64.
func graySamples(gray gocv.Mat) []float64 {
	data := gray.ToBytes()
	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v)
	}
	return samples
}
