package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/location-moderation/internal/pkg/utils"
	"github.com/location-moderation/internal/usecase"
	"go.uber.org/zap"
)

// ModerationHandler - вход контроллера модерации по прямой ссылке
type ModerationHandler struct {
	moderationUC *usecase.ModerationUseCase
	logger       *zap.Logger
}

// NewModerationHandler создает новый экземпляр ModerationHandler
func NewModerationHandler(moderationUC *usecase.ModerationUseCase, logger *zap.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUC: moderationUC,
		logger:       logger,
	}
}

// Approve godoc
// @Summary Одобрение заявки по прямой ссылке
// @Description Одобряет ожидающую заявку и вносит запись в удалённый документ
// @Tags Moderation
// @Produce json
// @Param id path string true "ID заявки"
// @Success 200 {object} dto.Resolution
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/moderation/approve/{id} [get]
func (h *ModerationHandler) Approve(c *fiber.Ctx) error {
	return h.resolve(c, true)
}

// Reject godoc
// @Summary Отклонение заявки по прямой ссылке
// @Description Отклоняет ожидающую заявку; удалённый документ не затрагивается
// @Tags Moderation
// @Produce json
// @Param id path string true "ID заявки"
// @Success 200 {object} dto.Resolution
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/moderation/reject/{id} [get]
func (h *ModerationHandler) Reject(c *fiber.Ctx) error {
	return h.resolve(c, false)
}

func (h *ModerationHandler) resolve(c *fiber.Ctx, approve bool) error {
	id := c.Params("id")

	res, err := h.moderationUC.ResolveAndNotify(c.Context(), id, approve)
	if err != nil {
		h.logger.Warn("Moderation link failed",
			zap.String("request_id", id),
			zap.Bool("approve", approve),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, res, nil)
}
