package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/location-moderation/internal/domain"
	"github.com/location-moderation/internal/domain/repository"
	"github.com/location-moderation/internal/pkg/errors"
	"github.com/location-moderation/internal/pkg/utils"
	"github.com/location-moderation/internal/usecase/dto"
)

// IntakeUseCase - приём заявок от клиентского приложения
type IntakeUseCase struct {
	pendingRepo repository.PendingRepository
	messenger   repository.MessengerRepository
	logger      *zap.Logger
}

// NewIntakeUseCase - создание нового IntakeUseCase
func NewIntakeUseCase(
	pendingRepo repository.PendingRepository,
	messenger repository.MessengerRepository,
	logger *zap.Logger,
) *IntakeUseCase {
	return &IntakeUseCase{
		pendingRepo: pendingRepo,
		messenger:   messenger,
		logger:      logger,
	}
}

// Submit валидирует заявку, ставит её в pending store и уведомляет
// модератора. Невалидные заявки в store не попадают.
func (uc *IntakeUseCase) Submit(ctx context.Context, req dto.IntakeRequest) (*dto.IntakeResponse, error) {
	if req.Location == nil {
		return nil, errors.ErrMissingLocation
	}
	if req.TelegramChatID == 0 {
		return nil, errors.ErrMissingChatID
	}

	loc := *req.Location
	if loc.Name == "" {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{
			"field": "name",
		})
	}
	if loc.Coords == "" {
		return nil, errors.ErrMissingCoordinates
	}
	if !loc.Country.IsSupported() {
		return nil, errors.ErrUnsupportedCountry.WithDetails(map[string]interface{}{
			"pais": string(loc.Country),
		})
	}

	// Координаты проверяются best effort: непарсящаяся пара или точка вне
	// страны - решение модератора, не причина отклонить заявку
	if lat, lon, err := utils.ParseCoords(loc.Coords); err != nil {
		uc.logger.Warn("Submission coordinates are not parseable",
			zap.String("coords", loc.Coords),
			zap.Error(err))
	} else if !domain.Countries[loc.Country].Bounds.Contains(lat, lon) {
		uc.logger.Warn("Submission coordinates outside country bounds",
			zap.String("country", string(loc.Country)),
			zap.Float64("lat", lat),
			zap.Float64("lon", lon))
	}

	// 128-битное случайное пространство, короткая запись: коллизии
	// пренебрежимо маловероятны, retry-цикл не нужен
	id := uuid.NewString()[:8]

	pending := domain.PendingRequest{
		ID:         id,
		Submission: loc,
		ChatID:     req.TelegramChatID,
		Country:    loc.Country,
		CreatedAt:  time.Now(),
	}

	if err := uc.pendingRepo.Put(id, pending); err != nil {
		uc.logger.Error("Failed to store pending request", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.logger.Info("Pending request stored",
		zap.String("request_id", id),
		zap.String("country", string(loc.Country)),
		zap.String("name", loc.Name))

	text, keyboard := ComposeSubmission(pending)
	if err := uc.messenger.SendMessage(ctx, req.TelegramChatID, text, keyboard); err != nil {
		// Первичное уведомление обязано дойти: иначе заявку никто не
		// увидит, запись из store откатывается
		uc.pendingRepo.Remove(id)
		uc.logger.Error("Failed to deliver submission notification",
			zap.String("request_id", id),
			zap.Error(err))
		return nil, errors.ErrDelivery
	}

	return &dto.IntakeResponse{
		Success:   true,
		RequestID: id,
		Message:   fmt.Sprintf("Solicitud enviada para %s", domain.Countries[loc.Country].Name),
	}, nil
}
