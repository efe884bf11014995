package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/location-moderation/internal/usecase"
	"github.com/location-moderation/internal/usecase/dto"
	"go.uber.org/zap"
)

// WebhookHandler принимает update'ы от Telegram
type WebhookHandler struct {
	webhookUC *usecase.WebhookUseCase
	logger    *zap.Logger
}

// NewWebhookHandler создает новый экземпляр WebhookHandler
func NewWebhookHandler(webhookUC *usecase.WebhookUseCase, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: webhookUC,
		logger:    logger,
	}
}

// HandleUpdate godoc
// @Summary Webhook Telegram
// @Description Принимает native update-конверт Telegram; платформе всегда возвращается generic ack независимо от внутреннего исхода
// @Tags Webhook
// @Accept json
// @Produce json
// @Param update body dto.Update true "Update-конверт"
// @Success 200 {object} map[string]string
// @Router /api/v1/webhook [post]
func (h *WebhookHandler) HandleUpdate(c *fiber.Ctx) error {
	var update dto.Update
	if err := c.BodyParser(&update); err != nil {
		h.logger.Warn("Failed to parse webhook update", zap.Error(err))
		// Платформе не нужен бизнес-статус
		return c.JSON(fiber.Map{"status": "ok"})
	}

	h.webhookUC.HandleUpdate(c.Context(), update)

	return c.JSON(fiber.Map{"status": "ok"})
}
