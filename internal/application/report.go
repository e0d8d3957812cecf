package app

import (
	"fmt"
	"strings"

	"satellite-analyzer/internal/domain/entity"
)

const reportBanner = "=================================================="

// RenderReport строит детерминированный текстовый отчёт по итогам анализа.
// Все числовые значения выводятся с двумя знаками после запятой.
func RenderReport(report *entity.AnalysisReport) string {
	if report == nil {
		return "No analysis data available"
	}

	var b strings.Builder

	b.WriteString(reportBanner + "\n")
	b.WriteString("SATELLITE IMAGE ANALYSIS REPORT\n")
	b.WriteString(reportBanner + "\n")

	info := report.ImageInfo
	fmt.Fprintf(&b, "Image Dimensions: %dx%dx%d\n", info.Width, info.Height, info.Channels)
	if info.Synthetic {
		fmt.Fprintf(&b, "File: %s (synthetic placeholder)\n", info.FilePath)
	} else {
		fmt.Fprintf(&b, "File: %s\n", info.FilePath)
	}

	quality := report.Quality
	b.WriteString("\nQUALITY ASSESSMENT:\n")
	fmt.Fprintf(&b, "  - Overall Quality: %.2f/1.0 (%s)\n", quality.OverallQuality, quality.Level)
	fmt.Fprintf(&b, "  - Sharpness: %.2f\n", quality.Sharpness)
	fmt.Fprintf(&b, "  - Contrast: %.2f\n", quality.Contrast)
	fmt.Fprintf(&b, "  - Noise Level: %.2f\n", quality.NoiseLevel)
	fmt.Fprintf(&b, "  - Brightness: %.2f\n", quality.Brightness)

	detection := report.Detection
	b.WriteString("\nOBJECT DETECTION:\n")
	fmt.Fprintf(&b, "  - Objects Found: %d\n", detection.TotalObjects)
	fmt.Fprintf(&b, "  - Detection Confidence: %.2f\n", detection.Confidence)
	for _, obj := range detection.Objects {
		fmt.Fprintf(&b, "    * %s (Confidence: %.2f)\n", obj.Class, obj.Confidence)
	}

	fmt.Fprintf(&b, "\nOVERALL USEFULNESS SCORE: %.2f/1.0\n", report.OverallScore)
	b.WriteString(reportBanner)

	return b.String()
}
