//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"
	"log"

	"satellite-analyzer/internal/domain/entity"
)

// Analyzer заглушка анализатора для сборки без OpenCV.
type Analyzer struct {
	logger *log.Logger
}

// NewAnalyzer создаёт анализатор-заглушку (без OpenCV).
func NewAnalyzer(logger *log.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// AnalyzeFile возвращает ошибку, если сборка без тега gocv.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*entity.AnalysisReport, error) {
	_ = ctx
	_ = path
	return nil, errors.New("gocv build tag is not enabled")
}

// AnalyzeBytes возвращает ошибку, если сборка без тега gocv.
func (a *Analyzer) AnalyzeBytes(ctx context.Context, data []byte, label string) (*entity.AnalysisReport, error) {
	_ = ctx
	_ = data
	_ = label
	return nil, errors.New("gocv build tag is not enabled")
}
