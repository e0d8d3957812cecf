package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "satellite-analyzer/internal/application"
	"satellite-analyzer/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для анализа спутниковых снимков.

🛰️ Отправьте мне снимок, и я оценю его качество и найду воду,
растительность и городскую застройку.

📋 Команды:
/analyze — начать анализ снимка
/last — показать последний отчёт
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте спутниковый снимок
2️⃣ Бот оценит резкость, контраст, шум и яркость
3️⃣ Бот найдёт водоёмы, растительность и застройку
4️⃣ Вы получите текстовый отчёт со сводной оценкой полезности

📋 Команды:
/analyze — начать анализ
/last — последний отчёт
/cancel — отменить операцию`

	msgAwaitingPhoto   = "🛰️ Отправьте спутниковый снимок для анализа."
	msgCancelled       = "❌ Операция отменена. Отправьте /analyze для нового анализа."
	msgSendPhoto       = "🛰️ Пожалуйста, отправьте спутниковый снимок для анализа."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Анализирую снимок..."
	msgNoReports       = "📭 Отчётов ещё нет. Отправьте снимок для анализа."
	msgProcessingError = "⚠️ Не удалось обработать снимок. Попробуйте отправить другой."
)

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	users    *app.UserService
	analysis *app.AnalysisService
}

// NewBot создаёт нового бота
func NewBot(token string, users *app.UserService, analysis *app.AnalysisService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		users:    users,
		analysis: analysis,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка снимков
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch msg.Command() {
	case "start":
		b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "analyze":
		b.users.BeginAnalysis(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "last":
		report, err := b.analysis.LastReport(ctx, user.ID)
		if err != nil || report == nil {
			b.sendMessage(msg.Chat.ID, msgNoReports)
			return
		}
		b.sendMessage(msg.Chat.ID, app.RenderReport(report))

	case "cancel":
		b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto обрабатывает присланный снимок
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	b.analysis.AcceptPhoto(ctx, userID, chatID)
	b.sendMessage(chatID, msgProcessing)

	// Берём файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(chatID, msgProcessingError)
		b.users.Cancel(ctx, userID, chatID)
		return
	}

	report, err := b.analysis.ProcessPhoto(ctx, userID, imageData, photo.FileID)
	if err != nil {
		log.Printf("Error analyzing photo: %v", err)
		b.sendMessage(chatID, msgProcessingError)
		b.users.Cancel(ctx, userID, chatID)
		return
	}

	b.sendMessage(chatID, app.RenderReport(report))
	b.users.Cancel(ctx, userID, chatID)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
