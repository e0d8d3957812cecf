package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"satellite-analyzer/config"
	telegram "satellite-analyzer/internal/api"
	app "satellite-analyzer/internal/application"
	"satellite-analyzer/internal/container"
	"satellite-analyzer/internal/infrastructure/storage"
	"satellite-analyzer/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	imagePath := flag.String("image", cfg.DefaultImage, "path to the satellite image")
	reportPath := flag.String("out", cfg.ReportFile, "path for the rendered report")
	botMode := flag.Bool("bot", false, "run as a Telegram bot")
	flag.Parse()

	// Собираем сервисы приложения
	analyzer := vision.NewAnalyzer(log.Default())
	userRepo := storage.NewMemoryUserRepository()
	reportRepo := storage.NewMemoryReportRepository()
	appContainer := container.New(userRepo, analyzer, reportRepo)

	if *botMode {
		if cfg.TelegramToken == "" {
			log.Fatal("TELEGRAM_TOKEN is required")
		}

		bot, err := telegram.NewBot(cfg.TelegramToken, appContainer.UserService, appContainer.AnalysisService)
		if err != nil {
			log.Fatalf("Failed to create bot: %v", err)
		}

		log.Println("Bot is running...")
		if err := bot.Run(); err != nil {
			log.Fatalf("Bot error: %v", err)
		}
		return
	}

	report, err := appContainer.AnalysisService.AnalyzeFile(context.Background(), *imagePath)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	text := app.RenderReport(report)
	fmt.Println(text)

	if err := os.WriteFile(*reportPath, []byte(text), 0o644); err != nil {
		log.Fatalf("Failed to save report: %v", err)
	}
	log.Printf("Analysis report saved to %s", *reportPath)
}
