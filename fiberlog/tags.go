package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid     = "pid"
	TagLatency = "latency"
	TagStatus  = "status"
	TagMethod  = "method"
	TagPath    = "path"
	TagURL     = "url"
	TagIP      = "ip"
	TagQuery   = "query"
	TagBody    = "body"
	TagResBody = "resBody"
	RequestID  = "requestId"
)

// FuncTag возвращает значение поля лога для тега
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

const maxBodyLen = 2048

func truncate(body []byte) string {
	if len(body) > maxBodyLen {
		return string(body[:maxBodyLen]) + "..."
	}
	return string(body)
}

var funcTags = map[string]FuncTag{
	TagPid: func(_ *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
		return c.Response().StatusCode()
	},
	TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, _ *data) interface{} {
		return c.Path()
	},
	TagURL: func(c *fiber.Ctx, _ *data) interface{} {
		return c.OriginalURL()
	},
	TagIP: func(c *fiber.Ctx, _ *data) interface{} {
		return c.IP()
	},
	TagQuery: func(c *fiber.Ctx, _ *data) interface{} {
		return string(c.Request().URI().QueryString())
	},
	TagBody: func(c *fiber.Ctx, _ *data) interface{} {
		return truncate(c.Body())
	},
	TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
		if ct := string(c.Response().Header.ContentType()); ct != fiber.MIMEApplicationJSON &&
			ct != fiber.MIMEApplicationJSONCharsetUTF8 {
			return ""
		}
		return truncate(c.Response().Body())
	},
	RequestID: func(c *fiber.Ctx, _ *data) interface{} {
		return c.GetRespHeader(fiber.HeaderXRequestID)
	},
}

// getFuncTagMap отбирает функции для тегов из конфигурации
func getFuncTagMap(cfg Config) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := funcTags[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
