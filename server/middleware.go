package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"time"
)

// RequestIDHeader is the header carrying the request identifier
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the Locals key the request identifier is stored under
const requestIDKey = "request_id"

// requestID takes the request identifier from the incoming header or
// generates a new one, and echoes it on the response
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {

		id := c.Get(RequestIDHeader)

		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(requestIDKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}

// getRequestID returns the identifier stored by the requestID middleware
func getRequestID(c *fiber.Ctx) string {

	id, ok := c.Locals(requestIDKey).(string)

	if !ok {
		return "unknown"
	}

	return id
}

// requestLogger logs every request once its response status is known
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {

		start := time.Now()

		// resolve errors here so the logged status is the one sent
		if err := c.Next(); err != nil {
			if hErr := s.errorHandler(c, err); hErr != nil {
				return hErr
			}
		}

		status := c.Response().StatusCode()

		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Int("response_size", len(c.Response().Body())),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			s.log.Error("server error", fields...)
		case status >= fiber.StatusBadRequest:
			s.log.Warn("client error", fields...)
		default:
			s.log.Info("request", fields...)
		}

		return nil
	}
}
