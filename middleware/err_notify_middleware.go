package middleware

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	apimodels "vacancies-backend/models/api"
)

type errNotification struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Error  string `json:"error"`
}

// ErrNotify отправляет на addr уведомление о каждом ответе 5xx
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < fiber.StatusInternalServerError {
			return err
		}

		body := c.Response().Body()
		var data apimodels.ErrorResponse
		if unmErr := json.Unmarshal(body, &data); unmErr != nil {
			log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
		}
		msg := data.Error
		if msg == "" {
			msg = string(body)
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload := errNotification{
			Code:   statusCode,
			Method: c.Method(),
			Path:   path,
			Error:  msg,
		}

		go func() {
			code, _, errs := fiber.Post(addr).JSON(payload).Bytes()
			if len(errs) != 0 {
				log.WithError(errs[0]).Warn("error sending error notification")
				return
			}
			if code >= fiber.StatusBadRequest {
				log.WithField("code", code).Warn("error notification rejected")
			}
		}()
		return err
	}
}
