package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/railway-assistant/internal/pkg/errors"
	"github.com/railway-assistant/internal/pkg/utils"
	"github.com/railway-assistant/internal/pkg/validator"
	"github.com/railway-assistant/internal/usecase/dto"
)

// ActionExecutor - то, что умеет выполнять actions по имени
type ActionExecutor interface {
	Names() []string
	Execute(ctx context.Context, req dto.ActionRequest) (*dto.ActionResponse, error)
}

// ActionHandler обрабатывает вызовы action от диалогового менеджера
type ActionHandler struct {
	executor ActionExecutor
	logger   *zap.Logger
}

// NewActionHandler создает новый экземпляр ActionHandler
func NewActionHandler(executor ActionExecutor, logger *zap.Logger) *ActionHandler {
	return &ActionHandler{
		executor: executor,
		logger:   logger,
	}
}

// Webhook godoc
// @Summary Выполнить action
// @Description Выполняет action, выбранный диалоговым менеджером, и возвращает реплики бота. Events всегда пустой список.
// @Tags Actions
// @Accept json
// @Produce json
// @Param request body dto.ActionRequest true "Вызов action с трекером диалога"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ActionErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /webhook [post]
func (h *ActionHandler) Webhook(c *fiber.Ctx) error {
	var req dto.ActionRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warn("Failed to parse action request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	if err := validator.ValidateRequest(&req); err != nil {
		h.logger.Warn("Invalid action request", zap.Error(err))
		return utils.SendError(c, err)
	}

	h.logger.Debug("Handling action request",
		zap.String("action", req.NextAction),
		zap.String("sender_id", req.SenderID))

	resp, err := h.executor.Execute(c.UserContext(), req)
	if err != nil {
		if appErr, ok := errors.As(err); ok && appErr.Code == errors.CodeActionNotFound {
			h.logger.Warn("Unknown action requested", zap.String("action", req.NextAction))
			return utils.SendActionError(c, err, req.NextAction)
		}
		h.logger.Error("Failed to execute action", zap.String("action", req.NextAction), zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.JSON(resp)
}

// ListActions godoc
// @Summary Список actions
// @Description Возвращает имена всех зарегистрированных actions
// @Tags Actions
// @Produce json
// @Success 200 {array} dto.ActionInfo
// @Router /actions [get]
func (h *ActionHandler) ListActions(c *fiber.Ctx) error {
	names := h.executor.Names()
	actions := make([]dto.ActionInfo, 0, len(names))
	for _, name := range names {
		actions = append(actions, dto.ActionInfo{Name: name})
	}
	return c.JSON(actions)
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *ActionHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
