package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/location-moderation/internal/config"
	"github.com/location-moderation/internal/domain"
	"github.com/location-moderation/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	botToken   string
	logger     *zap.Logger
}

// NewTelegramClient создает новый клиент для Telegram Bot API
func NewTelegramClient(cfg *config.TelegramConfig, logger *zap.Logger) repository.MessengerRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:  cfg.BaseURL,
		botToken: cfg.BotToken,
		logger:   logger,
	}
}

type sendMessagePayload struct {
	ChatID                int64                  `json:"chat_id"`
	Text                  string                 `json:"text"`
	ParseMode             string                 `json:"parse_mode"`
	DisableWebPagePreview bool                   `json:"disable_web_page_preview"`
	ReplyMarkup           *domain.InlineKeyboard `json:"reply_markup,omitempty"`
}

type editMessagePayload struct {
	ChatID    int64  `json:"chat_id"`
	MessageID int    `json:"message_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type answerCallbackPayload struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert"`
}

// SendMessage отправляет Markdown-сообщение, опционально с inline-клавиатурой
func (c *client) SendMessage(ctx context.Context, chatID int64, text string, keyboard *domain.InlineKeyboard) error {
	payload := sendMessagePayload{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
		ReplyMarkup:           keyboard,
	}

	return c.call(ctx, "sendMessage", payload)
}

// EditMessageText заменяет текст ранее отправленного сообщения
func (c *client) EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error {
	payload := editMessagePayload{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: "Markdown",
	}

	return c.call(ctx, "editMessageText", payload)
}

// AnswerCallbackQuery подтверждает нажатие inline-кнопки
func (c *client) AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error {
	payload := answerCallbackPayload{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       showAlert,
	}

	return c.call(ctx, "answerCallbackQuery", payload)
}

// call выполняет один вызов Bot API; ядру нужен только boolean success
func (c *client) call(ctx context.Context, method string, payload interface{}) error {
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.botToken, method)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.String("method", method), zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("method", method), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Telegram API returned error",
			zap.String("method", method),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return fmt.Errorf("telegram API error: method %s, status %d", method, resp.StatusCode)
	}

	c.logger.Debug("Telegram API call successful", zap.String("method", method))

	return nil
}
