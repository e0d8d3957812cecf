package container

import (
	app "satellite-analyzer/internal/application"
	"satellite-analyzer/internal/domain/port"
)

type Container struct {
	UserService     *app.UserService
	AnalysisService *app.AnalysisService
}

func New(userRepo port.UserRepository, analyzer port.SceneAnalyzer, reports port.ReportRepository) *Container {
	userService := app.NewUserService(userRepo)
	analysisService := app.NewAnalysisService(userService, analyzer, reports)

	return &Container{
		UserService:     userService,
		AnalysisService: analysisService,
	}
}
