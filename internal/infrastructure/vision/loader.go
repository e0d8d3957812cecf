//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"
)

// loadFromFile читает снимок с диска. При любой ошибке чтения или
// декодирования возвращает синтетическую заглушку, второй результат true.
func (a *Analyzer) loadFromFile(path string) (gocv.Mat, bool) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if !mat.Empty() {
		return mat, false
	}
	mat.Close()

	a.logf("failed to read %s, substituting synthetic placeholder", path)
	return synthesizePlaceholder(), true
}

// decodeBytes раскодирует снимок из байтов, с тем же запасным путём.
func (a *Analyzer) decodeBytes(data []byte) (gocv.Mat, bool) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, false
	}
	if err == nil {
		mat.Close()
	}

	a.logf("failed to decode image, substituting synthetic placeholder")
	return synthesizePlaceholder(), true
}

// synthesizePlaceholder строит детерминированный снимок-заглушку:
// вода, растительность, застройка и две дороги, пересекающиеся в центре.
func synthesizePlaceholder() gocv.Mat {
	mat := gocv.NewMatWithSize(placeholderSize, placeholderSize, gocv.MatTypeCV8UC3)

	for _, region := range placeholderRegions {
		gocv.Rectangle(&mat, region.Rect, region.Color, -1)
	}
	for _, road := range placeholderRoads {
		gocv.Line(&mat, road.From, road.To, roadColor, roadThickness)
	}

	return mat
}
