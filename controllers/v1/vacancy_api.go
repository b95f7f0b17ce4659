package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"vacancies-backend/controllers"
	vacancyhandler "vacancies-backend/lib/vacancy"
	apimodels "vacancies-backend/models/api"
	vacancyapimodels "vacancies-backend/models/api/vacancy"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("vacancy", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("create", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Get("pdf", controller.pdf)
			idRoute.Post("update", controller.update)
			idRoute.Put("update", controller.update)
			idRoute.Patch("update", controller.update)
			idRoute.Post("delete", controller.delete)
			idRoute.Delete("delete", controller.delete)
		})
	})
}

// @Summary Список
// @Tags Вакансия
// @Description Список с поиском по точному совпадению текста и постраничным выводом
// @Param	text	query	string	false	"текст вакансии, точное совпадение"
// @Param	page	query	int		false	"номер страницы, с 0"
// @Success 200 {object} apimodels.PageResponse{items=[]vacancyapimodels.VacancyListItem}
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /vacancy/ [get]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	page, err := c.GetPage(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	filter := vacancyapimodels.VacancyFilter{
		Text:       ctx.Query("text"),
		Pagination: apimodels.Pagination{Page: page},
	}
	resp, err := vacancyhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Создание
// @Tags Вакансия
// @Description Создание. Навыки, которых еще нет, создаются
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Success 201 {object} vacancyapimodels.VacancyView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 422 {object} map[string][]string
// @Failure 500 {object} apimodels.ErrorResponse
// @router /vacancy/create/ [post]
func (c *vacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vacancyhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary Получение по ИД
// @Tags Вакансия
// @Description Получение по ИД
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} vacancyapimodels.VacancyView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /vacancy/{id}/ [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vacancyhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Обновление
// @Tags Вакансия
// @Description Замена slug/text/status, навыки только добавляются
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} vacancyapimodels.VacancyView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 422 {object} map[string][]string
// @Failure 500 {object} apimodels.ErrorResponse
// @router /vacancy/{id}/update/ [post]
func (c *vacancyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload vacancyapimodels.VacancyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vacancyhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Удаление
// @Tags Вакансия
// @Description Удаление
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.StatusResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /vacancy/{id}/delete/ [post]
func (c *vacancyApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = vacancyhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewStatusOk())
}

// @Summary Карточка в pdf
// @Tags Вакансия
// @Description Карточка вакансии в pdf
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /vacancy/{id}/pdf/ [get]
func (c *vacancyApiController) pdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, err := vacancyhandler.Instance.ExportPdf(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования карточки вакансии")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=vacancy-%s.pdf", id))
	return ctx.Status(fiber.StatusOK).Send(body)
}
