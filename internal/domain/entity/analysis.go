package entity

import "math"

// Весовые коэффициенты итоговой оценки полезности снимка.
const (
	weightQuality   = 0.6
	weightDetection = 0.4
)

// ImageInfo сведения об исходном снимке.
type ImageInfo struct {
	Width     int
	Height    int
	Channels  int
	FilePath  string
	Synthetic bool // снимок заменён синтетической заглушкой
}

// AnalysisReport полный итог анализа одного снимка.
type AnalysisReport struct {
	ImageInfo    ImageInfo
	Quality      QualityReport
	Detection    DetectionResult
	OverallScore float64
}

// OverallScore сводит качество снимка и уверенность детектора в одну
// оценку полезности. Сверху ограничена единицей, снизу не ограничена.
func OverallScore(quality QualityReport, detection DetectionResult) float64 {
	score := quality.OverallQuality*weightQuality + detection.Confidence*weightDetection
	return math.Min(score, 1.0)
}
