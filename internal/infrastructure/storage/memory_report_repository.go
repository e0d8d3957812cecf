package storage

import (
	"context"
	"sync"

	"satellite-analyzer/internal/domain/entity"
	"satellite-analyzer/internal/domain/port"
)

// MemoryReportRepository in-memory хранилище последних отчётов об анализе
type MemoryReportRepository struct {
	mu      sync.RWMutex
	reports map[int64]*entity.AnalysisReport
}

// NewMemoryReportRepository создаёт новое in-memory хранилище отчётов
func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{
		reports: make(map[int64]*entity.AnalysisReport),
	}
}

// SaveLast запоминает последний отчёт пользователя
func (r *MemoryReportRepository) SaveLast(ctx context.Context, userID int64, report *entity.AnalysisReport) error {
	r.mu.Lock()
	r.reports[userID] = report
	r.mu.Unlock()

	return nil
}

// Last возвращает последний отчёт пользователя, nil если отчётов ещё не было
func (r *MemoryReportRepository) Last(ctx context.Context, userID int64) (*entity.AnalysisReport, error) {
	r.mu.RLock()
	report := r.reports[userID]
	r.mu.RUnlock()

	return report, nil
}

// Проверка реализации интерфейса
var _ port.ReportRepository = (*MemoryReportRepository)(nil)
