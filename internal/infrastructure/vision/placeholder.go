package vision

import (
	"image"
	"image/color"
)

// Размер синтетического снимка-заглушки.
const placeholderSize = 512

// placeholderRegion прямоугольник заглушки с цветом заливки.
type placeholderRegion struct {
	Rect  image.Rectangle
	Color color.RGBA
}

// placeholderRoad линия дороги на заглушке.
type placeholderRoad struct {
	From image.Point
	To   image.Point
}

// Детерминированная раскладка заглушки: одни и те же координаты
// и цвета при каждом вызове.
var (
	placeholderRegions = []placeholderRegion{
		{Rect: image.Rect(100, 100, 200, 200), Color: color.RGBA{R: 70, G: 130, B: 180, A: 255}},  // вода
		{Rect: image.Rect(300, 300, 400, 400), Color: color.RGBA{R: 80, G: 140, B: 190, A: 255}},  // вода
		{Rect: image.Rect(150, 350, 250, 450), Color: color.RGBA{R: 40, G: 180, B: 40, A: 255}},   // лес
		{Rect: image.Rect(350, 150, 450, 250), Color: color.RGBA{R: 50, G: 160, B: 50, A: 255}},   // лес
		{Rect: image.Rect(50, 50, 120, 120), Color: color.RGBA{R: 120, G: 120, B: 120, A: 255}},   // застройка
		{Rect: image.Rect(400, 400, 480, 480), Color: color.RGBA{R: 100, G: 100, B: 100, A: 255}}, // застройка
	}

	placeholderRoads = []placeholderRoad{
		{From: image.Pt(0, placeholderSize/2), To: image.Pt(placeholderSize, placeholderSize/2)},
		{From: image.Pt(placeholderSize/2, 0), To: image.Pt(placeholderSize/2, placeholderSize)},
	}

	roadColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

const roadThickness = 3
