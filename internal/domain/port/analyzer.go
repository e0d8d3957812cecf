package port

import (
	"context"

	"satellite-analyzer/internal/domain/entity"
)

// SceneAnalyzer интерфейс анализатора спутниковых снимков
type SceneAnalyzer interface {
	// AnalyzeFile читает снимок с диска и выполняет полный анализ
	AnalyzeFile(ctx context.Context, path string) (*entity.AnalysisReport, error)

	// AnalyzeBytes анализирует снимок, переданный байтами
	AnalyzeBytes(ctx context.Context, data []byte, label string) (*entity.AnalysisReport, error)
}
