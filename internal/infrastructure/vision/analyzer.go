//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"log"

	"gocv.io/x/gocv"

	"satellite-analyzer/internal/domain/entity"
)

// Analyzer выполняет полный конвейер анализа спутникового снимка:
// загрузка, оценка качества, поиск объектов, сводная оценка.
type Analyzer struct {
	logger *log.Logger
}

// NewAnalyzer создаёт анализатор. Логгер необязателен.
func NewAnalyzer(logger *log.Logger) *Analyzer {
	a := &Analyzer{logger: logger}
	a.logf("satellite image analyzer initialized")
	return a
}

// AnalyzeFile читает снимок с диска и выполняет полный анализ.
// Нечитаемый или отсутствующий файл заменяется синтетической заглушкой.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*entity.AnalysisReport, error) {
	_ = ctx
	a.logf("analyzing satellite image: %s", path)

	mat, synthetic := a.loadFromFile(path)
	defer mat.Close()

	return a.analyze(mat, path, synthetic)
}

// AnalyzeBytes анализирует снимок, переданный байтами.
// Снимок, который не удалось раскодировать, заменяется заглушкой.
func (a *Analyzer) AnalyzeBytes(ctx context.Context, data []byte, label string) (*entity.AnalysisReport, error) {
	_ = ctx
	a.logf("analyzing satellite image: %s (%d bytes)", label, len(data))

	mat, synthetic := a.decodeBytes(data)
	defer mat.Close()

	return a.analyze(mat, label, synthetic)
}

// analyze запускает оценку качества и детектор на одном снимке.
// Обе стадии читают снимок независимо друг от друга.
func (a *Analyzer) analyze(mat gocv.Mat, path string, synthetic bool) (*entity.AnalysisReport, error) {
	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	quality := assessQuality(mat)
	detection := detectObjects(mat)

	return &entity.AnalysisReport{
		ImageInfo: entity.ImageInfo{
			Width:     mat.Cols(),
			Height:    mat.Rows(),
			Channels:  mat.Channels(),
			FilePath:  path,
			Synthetic: synthetic,
		},
		Quality:      quality,
		Detection:    detection,
		OverallScore: entity.OverallScore(quality, detection),
	}, nil
}

func (a *Analyzer) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}
