package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"vacancies-backend/controllers"
	usershandler "vacancies-backend/lib/users"
	apimodels "vacancies-backend/models/api"
	usersapimodels "vacancies-backend/models/api/users"
)

type usersApiController struct {
	controllers.BaseAPIController
}

func InitUsersApiRouters(app *fiber.App) {
	controller := usersApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.report)
		router.Post("", controller.create)
		router.Get("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Delete("", controller.delete)
			idRoute.Post("delete", controller.delete)
		})
	})
}

// @Summary Пользователи и их вакансии
// @Tags Пользователи
// @Description Количество вакансий по пользователям (архивные учитываются)
// @Param	page	query	int		false	"номер страницы, с 0"
// @Success 200 {object} usersapimodels.UserVacanciesReport
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /users/ [get]
func (c *usersApiController) report(ctx *fiber.Ctx) error {
	page, err := c.GetPage(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.VacanciesReport(page)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения отчета по пользователям")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Создание пользователя
// @Tags Пользователи
// @Description Регистрация пользователя
// @Param	body body	 usersapimodels.CreateUser	true	"request body"
// @Success 201 {object} usersapimodels.UserView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 422 {object} map[string][]string
// @Failure 500 {object} apimodels.ErrorResponse
// @router /users/ [post]
func (c *usersApiController) create(ctx *fiber.Ctx) error {
	var payload usersapimodels.CreateUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания пользователя")
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary Удаление пользователя
// @Tags Пользователи
// @Description Удаление, вакансии пользователя архивируются
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.StatusResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /users/{id}/ [delete]
func (c *usersApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = usershandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewStatusOk())
}

// @Summary Выгрузка в xlsx
// @Tags Пользователи
// @Description Количество вакансий по всем пользователям в xlsx
// @Success 200 {file} file
// @Failure 500 {object} apimodels.ErrorResponse
// @router /users/export/ [get]
func (c *usersApiController) export(ctx *fiber.Ctx) error {
	buf, err := usershandler.Instance.ExportVacanciesReport()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки отчета по пользователям")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename=users.xlsx")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
