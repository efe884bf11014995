package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/location-moderation/internal/pkg/errors"
	"github.com/location-moderation/internal/pkg/utils"
	"github.com/location-moderation/internal/pkg/validator"
	"github.com/location-moderation/internal/usecase"
	"github.com/location-moderation/internal/usecase/dto"
	"go.uber.org/zap"
)

// IntakeHandler обрабатывает заявки от клиентского приложения
type IntakeHandler struct {
	intakeUC *usecase.IntakeUseCase
	logger   *zap.Logger
}

// NewIntakeHandler создает новый экземпляр IntakeHandler
func NewIntakeHandler(intakeUC *usecase.IntakeUseCase, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{
		intakeUC: intakeUC,
		logger:   logger,
	}
}

// Submit godoc
// @Summary Приём заявки на новую локацию
// @Description Принимает заявку от клиентского приложения, ставит её в очередь модерации и уведомляет модератора в Telegram
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body dto.IntakeRequest true "Конверт заявки"
// @Success 200 {object} dto.IntakeResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/submissions [post]
func (h *IntakeHandler) Submit(c *fiber.Ctx) error {
	var req dto.IntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	// Валидация конверта; содержимое заявки проверяет use case
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	result, err := h.intakeUC.Submit(c.Context(), req)
	if err != nil {
		h.logger.Warn("Submission rejected", zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
