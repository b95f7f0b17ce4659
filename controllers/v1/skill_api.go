package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"vacancies-backend/controllers"
	skillhandler "vacancies-backend/lib/skill"
)

type skillApiController struct {
	controllers.BaseAPIController
}

func InitSkillApiRouters(app *fiber.App) {
	controller := skillApiController{}
	app.Route("skill", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// @Summary Список навыков
// @Tags Навыки
// @Description Все навыки в алфавитном порядке
// @Success 200 {array} skillapimodels.SkillView
// @Failure 500 {object} apimodels.ErrorResponse
// @router /skill/ [get]
func (c *skillApiController) list(ctx *fiber.Ctx) error {
	list, err := skillhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка навыков")
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}
