//go:build gocv
// +build gocv

package vision

import (
	"image"

	"gocv.io/x/gocv"

	"satellite-analyzer/internal/domain/entity"
)

// detectObjects ищет объекты трёх классов на снимке: вода и растительность
// по цветовым диапазонам HSV, застройка по границам с морфологическим
// закрытием. Проходы выполняются в фиксированном порядке.
func detectObjects(mat gocv.Mat) entity.DetectionResult {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(mat, &hsv, gocv.ColorBGRToHSV)

	objects := objectsFromAreas(waterSpec, colorPassAreas(hsv, waterSpec))
	objects = append(objects, objectsFromAreas(vegetationSpec, colorPassAreas(hsv, vegetationSpec))...)
	objects = append(objects, objectsFromAreas(urbanSpec, edgePassAreas(mat))...)

	return entity.NewDetectionResult(objects)
}

// colorPassAreas площади внешних контуров маски цветового диапазона класса.
func colorPassAreas(hsv gocv.Mat, spec ClassSpec) []float64 {
	mask := gocv.NewMat()
	defer mask.Close()
	gocv.InRangeWithScalar(hsv,
		gocv.NewScalar(spec.HSV.HueLow, spec.HSV.SatLow, spec.HSV.ValLow, 0),
		gocv.NewScalar(spec.HSV.HueHigh, spec.HSV.SatHigh, spec.HSV.ValHigh, 0),
		&mask)

	return contourAreas(mask)
}

// edgePassAreas площади контуров застройки: границы Канни,
// затем закрытие для склейки соседних фрагментов в сплошные пятна.
func edgePassAreas(mat gocv.Mat) []float64 {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, cannyLowThreshold, cannyHighThreshold)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(morphKernelSize, morphKernelSize))
	defer kernel.Close()

	closed := gocv.NewMat()
	defer closed.Close()
	gocv.MorphologyEx(edges, &closed, gocv.MorphClose, kernel)

	return contourAreas(closed)
}

// contourAreas площади внешних контуров маски в порядке обнаружения.
func contourAreas(mask gocv.Mat) []float64 {
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	areas := make([]float64, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		areas = append(areas, gocv.ContourArea(contours.At(i)))
	}
	return areas
}
