// Package vision реализует эвристический анализ спутниковых снимков
// поверх OpenCV: оценку качества и поиск воды, растительности и застройки.
package vision

import "satellite-analyzer/internal/domain/port"

// Проверка реализации интерфейса
var _ port.SceneAnalyzer = (*Analyzer)(nil)
