package dto

import "github.com/location-moderation/internal/domain"

// IntakeRequest - конверт заявки от клиентского приложения
type IntakeRequest struct {
	Location       *domain.Submission `json:"location" validate:"required"`
	TelegramChatID int64              `json:"telegram_chat_id" validate:"required"`
}

// Update - входящий webhook-конверт Telegram. Заполнено ровно одно из полей.
type Update struct {
	Message       *Message       `json:"message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

// Message - текстовое сообщение боту
type Message struct {
	Text      string `json:"text"`
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
}

// Chat - ссылка на чат модератора
type Chat struct {
	ID int64 `json:"id"`
}

// CallbackQuery - нажатие inline-кнопки; Data несёт всё состояние,
// необходимое для возобновления контроллера: "<action>_<request_id>"
type CallbackQuery struct {
	ID      string   `json:"id"`
	Data    string   `json:"data"`
	Message *Message `json:"message,omitempty"`
}
