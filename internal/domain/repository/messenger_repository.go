package repository

import (
	"context"

	"github.com/location-moderation/internal/domain"
)

// MessengerRepository - исходящий интерфейс мессенджера. Контракт boolean
// success: телу ответа платформы ядро не доверяет и не использует его.
type MessengerRepository interface {
	SendMessage(ctx context.Context, chatID int64, text string, keyboard *domain.InlineKeyboard) error
	EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error
	AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error
}
