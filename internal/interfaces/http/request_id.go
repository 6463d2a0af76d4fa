package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/retail-stock/pkg/logger"
)

const requestIDKey = "request_id"

// RequestID asigna un ID único a cada petición (respeta X-Request-ID entrante)
// y lo expone en locals y en el header de respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(requestIDKey, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

// RequestLogger registra cada petición con método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		id, _ := c.Locals(requestIDKey).(string)
		log.Info().
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	}
}
