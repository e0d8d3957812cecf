package entity

// QualityLevel дискретная оценка качества снимка.
type QualityLevel string

const (
	QualityExcellent QualityLevel = "Excellent"
	QualityGood      QualityLevel = "Good"
	QualityFair      QualityLevel = "Fair"
	QualityPoor      QualityLevel = "Poor"
	QualityEstimated QualityLevel = "Estimated" // снимок недоступен, оценка по умолчанию
)

// Весовые коэффициенты итоговой оценки качества.
const (
	weightSharpness  = 0.3
	weightContrast   = 0.25
	weightNoise      = 0.25
	weightBrightness = 0.2
)

// QualityReport хранит метрики качества спутникового снимка.
type QualityReport struct {
	Sharpness      float64      // дисперсия лапласиана / 1000
	Contrast       float64      // стандартное отклонение яркости / 128
	NoiseLevel     float64      // медианное абсолютное отклонение / 64, не больше 1
	Brightness     float64      // треугольная оценка средней яркости
	OverallQuality float64      // взвешенная сумма четырёх метрик
	Level          QualityLevel // дискретный уровень по итоговой оценке
}

// NewQualityReport собирает отчёт о качестве из четырёх метрик.
// Итоговая оценка не зажимается в [0,1]: резкость и контраст могут
// превышать единицу, яркость может уходить в минус.
func NewQualityReport(sharpness, contrast, noise, brightness float64) QualityReport {
	overall := sharpness*weightSharpness +
		contrast*weightContrast +
		(1-noise)*weightNoise +
		brightness*weightBrightness

	return QualityReport{
		Sharpness:      sharpness,
		Contrast:       contrast,
		NoiseLevel:     noise,
		Brightness:     brightness,
		OverallQuality: overall,
		Level:          QualityLevelFor(overall),
	}
}

// DefaultQualityReport возвращает фиксированный отчёт, когда снимок недоступен.
func DefaultQualityReport() QualityReport {
	return QualityReport{
		Sharpness:      0.5,
		Contrast:       0.5,
		NoiseLevel:     0.3,
		Brightness:     0.7,
		OverallQuality: 0.5,
		Level:          QualityEstimated,
	}
}

// QualityLevelFor переводит численную оценку в дискретный уровень.
func QualityLevelFor(score float64) QualityLevel {
	switch {
	case score >= 0.8:
		return QualityExcellent
	case score >= 0.6:
		return QualityGood
	case score >= 0.4:
		return QualityFair
	default:
		return QualityPoor
	}
}
