package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"vacancies-backend/controllers"
	"vacancies-backend/db"
	apimodels "vacancies-backend/models/api"
)

type healthApiController struct {
	controllers.BaseAPIController
	ping func() error
}

func InitHealthApiRouters(app *fiber.App) {
	controller := healthApiController{ping: db.PingDB}
	app.Get("health", controller.health)
}

// @Summary Проверка доступности
// @Tags Служебные
// @Success 200 {object} apimodels.StatusResponse
// @Failure 503 {object} apimodels.ErrorResponse
// @router /health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	if err := c.ping(); err != nil {
		c.GetLogger(ctx).WithError(err).Error("БД недоступна")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("database unavailable"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewStatusOk())
}
