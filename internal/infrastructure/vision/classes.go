package vision

import (
	"math"

	"satellite-analyzer/internal/domain/entity"
)

// HSVRange цветовой диапазон в пространстве HSV (8-битные каналы OpenCV).
type HSVRange struct {
	HueLow, HueHigh float64
	SatLow, SatHigh float64
	ValLow, ValHigh float64
}

// ClassSpec параметры поиска одного класса объектов.
type ClassSpec struct {
	Class       entity.ObjectClass
	HSV         *HSVRange // nil для классов, которые ищутся по границам
	MinArea     float64   // контуры с площадью не больше этой отбрасываются
	AreaDivisor float64   // нормировка площади контура в уверенность
}

// Confidence переводит площадь контура в уверенность [0,1].
func (c ClassSpec) Confidence(area float64) float64 {
	return math.Min(area/c.AreaDivisor, 1.0)
}

// Пороговые параметры детектора по классам.
var (
	waterSpec = ClassSpec{
		Class:       entity.ClassWaterBody,
		HSV:         &HSVRange{HueLow: 100, HueHigh: 130, SatLow: 50, SatHigh: 255, ValLow: 50, ValHigh: 255},
		MinArea:     100,
		AreaDivisor: 10000,
	}

	vegetationSpec = ClassSpec{
		Class:       entity.ClassVegetation,
		HSV:         &HSVRange{HueLow: 35, HueHigh: 85, SatLow: 50, SatHigh: 255, ValLow: 50, ValHigh: 255},
		MinArea:     100,
		AreaDivisor: 8000,
	}

	urbanSpec = ClassSpec{
		Class:       entity.ClassUrbanArea,
		MinArea:     200,
		AreaDivisor: 15000,
	}
)

// Параметры выделения границ для городской застройки.
const (
	cannyLowThreshold  = 50
	cannyHighThreshold = 150
	morphKernelSize    = 5
)

// objectsFromAreas строит объекты по площадям контуров одного прохода,
// сохраняя порядок обнаружения.
func objectsFromAreas(spec ClassSpec, areas []float64) []entity.DetectedObject {
	objects := make([]entity.DetectedObject, 0, len(areas))
	for _, area := range areas {
		if area <= spec.MinArea {
			continue
		}
		objects = append(objects, entity.DetectedObject{
			Class:      spec.Class,
			Confidence: spec.Confidence(area),
			Area:       area,
		})
	}
	return objects
}
