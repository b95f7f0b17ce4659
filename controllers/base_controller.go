package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apimodels "vacancies-backend/models/api"
)

type BaseAPIController struct{}

// BodyParser разбор тела запроса, без Content-Type тело считается JSON
func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Request().Header.ContentType()) == 0 {
		if err := ctx.App().Config().JSONDecoder(ctx.Body(), out); err != nil {
			log.WithError(err).Error("ошибка распознавания запроса")
			return errors.New("could not parse request body")
		}
		return nil
	}
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("could not parse request body")
	}
	return nil
}

// GetID ид записи из пути запроса, должен быть UUID
func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.Errorf("invalid id %q", id)
	}
	return id, nil
}

// GetPage номер страницы из query параметра page
func (c *BaseAPIController) GetPage(ctx *fiber.Ctx) (int, error) {
	return apimodels.ParsePage(ctx.Query("page"))
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
	if requestID := ctx.GetRespHeader(fiber.HeaderXRequestID); requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// SendError ответ с ошибкой: 404/400/422 для известных ошибок, иначе 500 с записью в лог
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	var notFound apimodels.NotFoundError
	if errors.As(err, &notFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(notFound.Message))
	}
	var badRequest apimodels.BadRequestError
	if errors.As(err, &badRequest) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(badRequest.Message))
	}
	var validation apimodels.ValidationError
	if errors.As(err, &validation) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(validation.Fields)
	}
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}
