package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"satellite-analyzer/internal/domain/entity"
	"satellite-analyzer/internal/infrastructure/storage"
)

type fakeAnalyzer struct {
	report *entity.AnalysisReport
	err    error
}

func (f *fakeAnalyzer) AnalyzeFile(ctx context.Context, path string) (*entity.AnalysisReport, error) {
	return f.report, f.err
}

func (f *fakeAnalyzer) AnalyzeBytes(ctx context.Context, data []byte, label string) (*entity.AnalysisReport, error) {
	return f.report, f.err
}

func newTestReport() *entity.AnalysisReport {
	quality := entity.DefaultQualityReport()
	detection := entity.NewDetectionResult([]entity.DetectedObject{
		{Class: entity.ClassWaterBody, Confidence: 0.5, Area: 5000},
	})

	return &entity.AnalysisReport{
		ImageInfo:    entity.ImageInfo{Width: 512, Height: 512, Channels: 3, FilePath: "test.jpg"},
		Quality:      quality,
		Detection:    detection,
		OverallScore: entity.OverallScore(quality, detection),
	}
}

func TestAnalysisService_ProcessPhotoStoresLastReport(t *testing.T) {
	userRepo := storage.NewMemoryUserRepository()
	reportRepo := storage.NewMemoryReportRepository()
	report := newTestReport()
	svc := NewAnalysisService(NewUserService(userRepo), &fakeAnalyzer{report: report}, reportRepo)
	ctx := context.Background()

	got, err := svc.ProcessPhoto(ctx, 1, []byte("photo"), "photo.jpg")
	require.NoError(t, err)
	require.Equal(t, report, got)

	last, err := svc.LastReport(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, report, last)
}

func TestAnalysisService_LastReportWhenNonePresent(t *testing.T) {
	userRepo := storage.NewMemoryUserRepository()
	reportRepo := storage.NewMemoryReportRepository()
	svc := NewAnalysisService(NewUserService(userRepo), &fakeAnalyzer{}, reportRepo)

	last, err := svc.LastReport(context.Background(), 42)
	require.NoError(t, err)
	require.Nil(t, last)
}

func TestAnalysisService_AnalyzerNotConfigured(t *testing.T) {
	userRepo := storage.NewMemoryUserRepository()
	svc := NewAnalysisService(NewUserService(userRepo), nil, storage.NewMemoryReportRepository())
	ctx := context.Background()

	_, err := svc.AnalyzeFile(ctx, "image.jpg")
	require.Error(t, err)

	_, err = svc.ProcessPhoto(ctx, 1, []byte("photo"), "photo.jpg")
	require.Error(t, err)
}

func TestAnalysisService_ProcessPhotoPropagatesError(t *testing.T) {
	userRepo := storage.NewMemoryUserRepository()
	analyzeErr := errors.New("decode failed")
	svc := NewAnalysisService(NewUserService(userRepo), &fakeAnalyzer{err: analyzeErr}, storage.NewMemoryReportRepository())

	_, err := svc.ProcessPhoto(context.Background(), 1, []byte("photo"), "photo.jpg")
	require.ErrorIs(t, err, analyzeErr)
}

func TestAnalysisService_AcceptPhoto(t *testing.T) {
	userRepo := storage.NewMemoryUserRepository()
	svc := NewAnalysisService(NewUserService(userRepo), &fakeAnalyzer{}, storage.NewMemoryReportRepository())

	user, err := svc.AcceptPhoto(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, user.State)
}
