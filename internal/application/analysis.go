package app

import (
	"context"
	"errors"

	"satellite-analyzer/internal/domain/entity"
	"satellite-analyzer/internal/domain/port"
)

type AnalysisService struct {
	users    *UserService
	analyzer port.SceneAnalyzer
	reports  port.ReportRepository
}

// NewAnalysisService создаёт сервис, который управляет анализом снимков.
func NewAnalysisService(users *UserService, analyzer port.SceneAnalyzer, reports port.ReportRepository) *AnalysisService {
	return &AnalysisService{
		users:    users,
		analyzer: analyzer,
		reports:  reports,
	}
}

// AnalyzeFile запускает полный анализ снимка с диска.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path string) (*entity.AnalysisReport, error) {
	if s.analyzer == nil {
		return nil, errors.New("analyzer is not configured")
	}

	return s.analyzer.AnalyzeFile(ctx, path)
}

// AcceptPhoto принимает снимок от пользователя и переводит его в состояние обработки.
func (s *AnalysisService) AcceptPhoto(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.users.SetState(ctx, userID, chatID, entity.StateProcessing)
}

// ProcessPhoto анализирует присланный снимок и запоминает отчёт пользователя.
func (s *AnalysisService) ProcessPhoto(ctx context.Context, userID int64, photo []byte, label string) (*entity.AnalysisReport, error) {
	if s.analyzer == nil {
		return nil, errors.New("analyzer is not configured")
	}

	report, err := s.analyzer.AnalyzeBytes(ctx, photo, label)
	if err != nil {
		return nil, err
	}

	if s.reports != nil {
		_ = s.reports.SaveLast(ctx, userID, report)
	}

	return report, nil
}

// LastReport возвращает последний отчёт пользователя, nil если его ещё нет.
func (s *AnalysisService) LastReport(ctx context.Context, userID int64) (*entity.AnalysisReport, error) {
	if s.reports == nil {
		return nil, errors.New("report storage is not configured")
	}

	return s.reports.Last(ctx, userID)
}
