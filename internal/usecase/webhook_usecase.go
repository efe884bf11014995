package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/location-moderation/internal/domain/repository"
	"github.com/location-moderation/internal/pkg/errors"
	"github.com/location-moderation/internal/usecase/dto"
)

// WebhookUseCase - диспетчер входящих update'ов Telegram: текстовые команды
// и callback'и inline-кнопок. Платформе всегда возвращается generic ack,
// поэтому ошибки здесь логируются, а не пробрасываются.
type WebhookUseCase struct {
	moderationUC *ModerationUseCase
	messenger    repository.MessengerRepository
	logger       *zap.Logger
}

// NewWebhookUseCase - создание нового WebhookUseCase
func NewWebhookUseCase(
	moderationUC *ModerationUseCase,
	messenger repository.MessengerRepository,
	logger *zap.Logger,
) *WebhookUseCase {
	return &WebhookUseCase{
		moderationUC: moderationUC,
		messenger:    messenger,
		logger:       logger,
	}
}

// HandleUpdate обрабатывает один webhook-конверт
func (uc *WebhookUseCase) HandleUpdate(ctx context.Context, update dto.Update) {
	switch {
	case update.Message != nil:
		uc.handleMessage(ctx, *update.Message)
	case update.CallbackQuery != nil:
		uc.handleCallback(ctx, *update.CallbackQuery)
	default:
		uc.logger.Debug("Webhook update carries neither message nor callback")
	}
}

func (uc *WebhookUseCase) handleMessage(ctx context.Context, msg dto.Message) {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return
	}

	chatID := msg.Chat.ID

	switch fields[0] {
	case "/start":
		uc.send(ctx, chatID, ComposeStart())

	case "/paises":
		uc.send(ctx, chatID, ComposeCountries())

	case "/lista":
		pending := uc.moderationUC.ListPending(chatID)
		uc.send(ctx, chatID, ComposePendingList(pending))

	case "/aprobar":
		if len(fields) < 2 {
			uc.send(ctx, chatID, "Uso: /aprobar <id>")
			return
		}
		uc.resolveByCommand(ctx, chatID, fields[1], true)

	case "/rechazar":
		if len(fields) < 2 {
			uc.send(ctx, chatID, "Uso: /rechazar <id>")
			return
		}
		uc.resolveByCommand(ctx, chatID, fields[1], false)

	default:
		uc.logger.Debug("Unknown command ignored", zap.String("text", fields[0]))
	}
}

// resolveByCommand - текстовый вход контроллера модерации
func (uc *WebhookUseCase) resolveByCommand(ctx context.Context, chatID int64, id string, approve bool) {
	var (
		res *dto.Resolution
		err error
	)

	if approve {
		res, err = uc.moderationUC.Approve(ctx, id)
	} else {
		res, err = uc.moderationUC.Reject(ctx, id)
	}

	switch {
	case errors.Is(err, errors.ErrRequestNotFound):
		uc.send(ctx, chatID, ComposeNotFound())
	case err != nil:
		uc.send(ctx, chatID, ComposeMergeFailed())
	default:
		uc.send(ctx, chatID, res.Text)
	}
}

func (uc *WebhookUseCase) handleCallback(ctx context.Context, cb dto.CallbackQuery) {
	if cb.Message == nil {
		uc.logger.Warn("Callback without message reference", zap.String("callback_id", cb.ID))
		return
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	switch {
	case strings.HasPrefix(cb.Data, ActionApprove):
		uc.answer(ctx, cb.ID, "", false)
		id := strings.TrimPrefix(cb.Data, ActionApprove)
		res, err := uc.moderationUC.Approve(ctx, id)
		uc.editResolution(ctx, chatID, messageID, res, err)

	case strings.HasPrefix(cb.Data, ActionReject):
		uc.answer(ctx, cb.ID, "", false)
		id := strings.TrimPrefix(cb.Data, ActionReject)
		res, err := uc.moderationUC.Reject(ctx, id)
		uc.editResolution(ctx, chatID, messageID, res, err)

	case strings.HasPrefix(cb.Data, ActionCopy):
		id := strings.TrimPrefix(cb.Data, ActionCopy)
		coords, err := uc.moderationUC.CopyCoords(id)
		if err != nil {
			uc.answer(ctx, cb.ID, ComposeNotFound(), true)
			return
		}
		uc.answer(ctx, cb.ID, "📍 Coordenadas:\n"+coords+"\n\nCopia manualmente", true)

	default:
		uc.logger.Warn("Unknown callback action", zap.String("data", cb.Data))
		uc.answer(ctx, cb.ID, "", false)
	}
}

// editResolution заменяет исходное уведомление текстом исхода. Store уже
// изменён: ошибка редактирования не должна влиять на результат модерации.
func (uc *WebhookUseCase) editResolution(ctx context.Context, chatID int64, messageID int, res *dto.Resolution, err error) {
	text := ""

	switch {
	case errors.Is(err, errors.ErrRequestNotFound):
		text = ComposeNotFound()
	case err != nil:
		text = ComposeMergeFailed()
	default:
		text = res.Text
	}

	if editErr := uc.messenger.EditMessageText(ctx, chatID, messageID, text); editErr != nil {
		uc.logger.Warn("Failed to edit notification message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(editErr))
	}
}

func (uc *WebhookUseCase) send(ctx context.Context, chatID int64, text string) {
	if err := uc.messenger.SendMessage(ctx, chatID, text, nil); err != nil {
		uc.logger.Warn("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (uc *WebhookUseCase) answer(ctx context.Context, callbackID, text string, alert bool) {
	if err := uc.messenger.AnswerCallbackQuery(ctx, callbackID, text, alert); err != nil {
		uc.logger.Warn("Failed to answer callback query", zap.Error(err))
	}
}
