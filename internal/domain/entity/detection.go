package entity

import "math"

// ObjectClass класс объекта, обнаруженного на снимке.
type ObjectClass string

const (
	ClassWaterBody  ObjectClass = "water_body"
	ClassVegetation ObjectClass = "vegetation"
	ClassUrbanArea  ObjectClass = "urban_area"
)

// DetectedObject один найденный объект.
type DetectedObject struct {
	Class      ObjectClass
	Confidence float64 // уверенность в диапазоне [0,1]
	Area       float64 // площадь контура в пикселях
}

// DetectionResult итог поиска объектов на одном снимке.
type DetectionResult struct {
	Objects      []DetectedObject // в порядке обнаружения контуров
	Confidence   float64          // средняя уверенность по объектам
	TotalObjects int
}

// NewDetectionResult собирает итог по списку найденных объектов.
func NewDetectionResult(objects []DetectedObject) DetectionResult {
	return DetectionResult{
		Objects:      objects,
		Confidence:   AggregateConfidence(objects),
		TotalObjects: len(objects),
	}
}

// AggregateConfidence средняя уверенность по всем объектам, не больше 1.0.
// Для пустого списка возвращает ровно 0.
func AggregateConfidence(objects []DetectedObject) float64 {
	if len(objects) == 0 {
		return 0.0
	}

	var total float64
	for _, obj := range objects {
		total += obj.Confidence
	}

	return math.Min(total/float64(len(objects)), 1.0)
}
