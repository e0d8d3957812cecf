//go:build gocv
// +build gocv

package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gocv.io/x/gocv"

	"satellite-analyzer/internal/domain/entity"
)

func TestDetectObjects_PlaceholderYieldsAllClasses(t *testing.T) {
	mat := synthesizePlaceholder()
	defer mat.Close()

	result := detectObjects(mat)
	require.NotEmpty(t, result.Objects)
	require.Equal(t, len(result.Objects), result.TotalObjects)
	require.GreaterOrEqual(t, result.Confidence, 0.0)
	require.LessOrEqual(t, result.Confidence, 1.0)

	classes := map[entity.ObjectClass]int{}
	for _, obj := range result.Objects {
		classes[obj.Class]++
		require.GreaterOrEqual(t, obj.Confidence, 0.0)
		require.LessOrEqual(t, obj.Confidence, 1.0)
	}
	require.Positive(t, classes[entity.ClassWaterBody])
	require.Positive(t, classes[entity.ClassVegetation])
	require.Positive(t, classes[entity.ClassUrbanArea])
}

func TestDetectObjects_Idempotent(t *testing.T) {
	mat := synthesizePlaceholder()
	defer mat.Close()

	first := detectObjects(mat)
	second := detectObjects(mat)
	require.Equal(t, first, second)
}

func TestAssessQuality_EmptyMatReturnsDefaults(t *testing.T) {
	mat := gocv.NewMat()
	defer mat.Close()

	require.Equal(t, entity.DefaultQualityReport(), assessQuality(mat))
}

func TestAnalyzeFile_MissingFileFallsBackToPlaceholder(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	report, err := analyzer.AnalyzeFile(context.Background(), "does-not-exist.jpg")
	require.NoError(t, err)
	require.True(t, report.ImageInfo.Synthetic)
	require.Equal(t, "does-not-exist.jpg", report.ImageInfo.FilePath)
	require.Equal(t, 512, report.ImageInfo.Width)
	require.Equal(t, 512, report.ImageInfo.Height)
	require.Equal(t, 3, report.ImageInfo.Channels)

	require.GreaterOrEqual(t, report.OverallScore, 0.0)
	require.LessOrEqual(t, report.OverallScore, 1.0)

	if len(report.Detection.Objects) == 0 {
		require.Equal(t, 0.0, report.Detection.Confidence)
	} else {
		require.Greater(t, report.Detection.Confidence, 0.0)
	}
}

func TestAnalyzeBytes_UndecodableBytesFallBackToPlaceholder(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	report, err := analyzer.AnalyzeBytes(context.Background(), []byte("not an image"), "upload")
	require.NoError(t, err)
	require.True(t, report.ImageInfo.Synthetic)
	require.Equal(t, "upload", report.ImageInfo.FilePath)
	require.Equal(t, 512, report.ImageInfo.Width)
}
