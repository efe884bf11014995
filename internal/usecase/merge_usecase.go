package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/location-moderation/internal/domain"
	"github.com/location-moderation/internal/domain/repository"
	"github.com/location-moderation/internal/pkg/errors"
	"github.com/location-moderation/internal/pkg/utils"
)

// MergeUseCase - движок идемпотентного merge в удалённый документ:
// read-modify-write с blob SHA как compare-and-swap precondition'ом.
// Ровно одно чтение и не более одной записи на вызов; повторов при
// конфликте нет - модератор нажимает approve ещё раз.
type MergeUseCase struct {
	documentRepo repository.DocumentRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewMergeUseCase - создание нового MergeUseCase
func NewMergeUseCase(documentRepo repository.DocumentRepository, logger *zap.Logger) *MergeUseCase {
	return &MergeUseCase{
		documentRepo: documentRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Commit вставляет запись заявки в партицию её страны и записывает документ
// обратно. Возвращает итоговый slug-ключ записи.
func (uc *MergeUseCase) Commit(ctx context.Context, req domain.PendingRequest) (string, error) {
	// 1. Чтение документа вместе с revision-токеном
	file, err := uc.documentRepo.GetFile(ctx)
	if err != nil {
		uc.logger.Error("Failed to fetch locations document", zap.Error(err))
		return "", err
	}

	// 2. Декодирование; пустое тело - пустая структура
	doc := make(domain.LocationsDocument)
	if len(bytes.TrimSpace(file.Content)) > 0 {
		if err := json.Unmarshal(file.Content, &doc); err != nil {
			uc.logger.Error("Failed to decode locations document", zap.Error(err))
			return "", errors.ErrDocumentFetch.WithDetails(map[string]interface{}{
				"reason": "document is not valid JSON",
			})
		}
	}

	// 3. Партиции всех известных стран
	doc.EnsurePartitions()

	// 4. Ключ против живого содержимого партиции: с момента постановки
	// заявки в очередь партиция могла измениться
	key := utils.UniqueKey(req.Submission.Name, func(k string) bool {
		return doc.HasKey(req.Country, k)
	})

	// 5. Запись; координаты best effort, как и форма адреса
	lat, lon, parseErr := utils.ParseCoords(req.Submission.Coords)
	if parseErr != nil {
		uc.logger.Warn("Failed to parse coordinates, storing zeros",
			zap.String("request_id", req.ID),
			zap.Error(parseErr))
		lat, lon = 0, 0
	}

	record, ok := domain.NewStoredRecord(req.Submission, lat, lon, uc.now())
	if !ok {
		return "", errors.ErrUnsupportedCountry
	}

	doc[req.Country][key] = record

	// 6. Кодирование всего документа
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		uc.logger.Error("Failed to encode locations document", zap.Error(err))
		return "", errors.ErrDocumentWrite
	}

	// 7. Запись с precondition; конфликт наружу без повтора
	message := fmt.Sprintf("📍 Agregar en %s: %s", domain.Countries[req.Country].Name, req.Submission.Name)
	if err := uc.documentRepo.PutFile(ctx, message, buf.Bytes(), file.SHA); err != nil {
		uc.logger.Error("Failed to write locations document",
			zap.String("request_id", req.ID),
			zap.Error(err))
		return "", err
	}

	uc.logger.Info("Location committed to remote document",
		zap.String("request_id", req.ID),
		zap.String("country", string(req.Country)),
		zap.String("key", key))

	return key, nil
}
