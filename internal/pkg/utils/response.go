package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railway-assistant/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// ActionErrorResponse - тело ошибки в формате action-сервера
type ActionErrorResponse struct {
	Error      string `json:"error"`
	ActionName string `json:"action_name,omitempty"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

// SendActionError отвечает ошибкой в формате, который ожидает диалоговый менеджер
func SendActionError(c *fiber.Ctx, err error, actionName string) error {
	status := fiber.StatusInternalServerError
	message := errors.ErrInternalServer.Message
	if appErr, ok := errors.As(err); ok {
		status = appErr.StatusCode
		message = appErr.Message
	}

	return c.Status(status).JSON(ActionErrorResponse{
		Error:      message,
		ActionName: actionName,
	})
}
