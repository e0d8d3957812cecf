package port

import (
	"context"

	"satellite-analyzer/internal/domain/entity"
)

// ReportRepository интерфейс хранилища отчётов об анализе
type ReportRepository interface {
	// SaveLast запоминает последний отчёт пользователя
	SaveLast(ctx context.Context, userID int64, report *entity.AnalysisReport) error

	// Last возвращает последний отчёт пользователя, nil если отчётов ещё не было
	Last(ctx context.Context, userID int64) (*entity.AnalysisReport, error)
}
