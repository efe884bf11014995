package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/location-moderation/internal/domain"
	"github.com/location-moderation/internal/domain/repository"
	"github.com/location-moderation/internal/pkg/errors"
	"github.com/location-moderation/internal/usecase/dto"
)

// ModerationUseCase - конечный автомат заявки: Pending -> Approved|Rejected.
// Оба терминальных состояния совпадают с удалением из store; истории
// решённых заявок нет.
type ModerationUseCase struct {
	pendingRepo repository.PendingRepository
	mergeUC     *MergeUseCase
	messenger   repository.MessengerRepository
	logger      *zap.Logger
}

// NewModerationUseCase - создание нового ModerationUseCase
func NewModerationUseCase(
	pendingRepo repository.PendingRepository,
	mergeUC *MergeUseCase,
	messenger repository.MessengerRepository,
	logger *zap.Logger,
) *ModerationUseCase {
	return &ModerationUseCase{
		pendingRepo: pendingRepo,
		mergeUC:     mergeUC,
		messenger:   messenger,
		logger:      logger,
	}
}

// Approve атомарно изымает заявку и выполняет merge. Take-семантика Remove
// гарантирует, что из двух одновременных approve merge выполнит ровно один:
// второй увидит NOT_FOUND. Блокировка store не удерживается на время
// сетевого вызова.
func (uc *ModerationUseCase) Approve(ctx context.Context, id string) (*dto.Resolution, error) {
	req, ok := uc.pendingRepo.Remove(id)
	if !ok {
		return nil, errors.ErrRequestNotFound
	}

	key, err := uc.mergeUC.Commit(ctx, req)
	if err != nil {
		// Merge не прошёл - заявка возвращается в Pending под тем же id,
		// модератор может повторить
		if putErr := uc.pendingRepo.Put(id, req); putErr != nil {
			uc.logger.Error("Failed to restore pending request after merge failure",
				zap.String("request_id", id),
				zap.Error(putErr))
		}
		return nil, err
	}

	uc.logger.Info("Request approved",
		zap.String("request_id", id),
		zap.String("key", key))

	return &dto.Resolution{
		Request:  req,
		Approved: true,
		Key:      key,
		Text:     ComposeApproved(req),
	}, nil
}

// Reject изымает заявку без внешних вызовов
func (uc *ModerationUseCase) Reject(ctx context.Context, id string) (*dto.Resolution, error) {
	req, ok := uc.pendingRepo.Remove(id)
	if !ok {
		return nil, errors.ErrRequestNotFound
	}

	uc.logger.Info("Request rejected", zap.String("request_id", id))

	return &dto.Resolution{
		Request:  req,
		Approved: false,
		Text:     ComposeRejected(req),
	}, nil
}

// CopyCoords возвращает координаты заявки для alert'а callback'а
func (uc *ModerationUseCase) CopyCoords(id string) (string, error) {
	req, ok := uc.pendingRepo.Get(id)
	if !ok {
		return "", errors.ErrRequestNotFound
	}
	return req.Submission.Coords, nil
}

// ListPending - заявки одного чата для команды /lista
func (uc *ModerationUseCase) ListPending(chatID int64) []domain.PendingRequest {
	return uc.pendingRepo.ListByChat(chatID)
}

// ResolveAndNotify - вход для прямых ссылок: решает заявку и best-effort
// уведомляет исходный чат. Store уже изменён к моменту отправки, поэтому
// ошибка доставки не влияет на исход (mutate-then-notify).
func (uc *ModerationUseCase) ResolveAndNotify(ctx context.Context, id string, approve bool) (*dto.Resolution, error) {
	var (
		res *dto.Resolution
		err error
	)

	if approve {
		res, err = uc.Approve(ctx, id)
	} else {
		res, err = uc.Reject(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	if sendErr := uc.messenger.SendMessage(ctx, res.Request.ChatID, res.Text, nil); sendErr != nil {
		uc.logger.Warn("Failed to deliver resolution notice",
			zap.String("request_id", id),
			zap.Error(sendErr))
	}

	return res, nil
}
