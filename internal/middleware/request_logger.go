package middleware

import (
	"time"

	"verse-journal/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request. It expects the requestid
// middleware to run first.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("userAgent", c.Get(fiber.HeaderUserAgent)),
			zap.String("requestID", c.GetRespHeader(fiber.HeaderXRequestID)),
		}
		if userID, ok := UserID(c); ok {
			fields = append(fields, zap.String("userID", userID))
		}
		logger.Get().Info("HTTP request", fields...)
		return err
	}
}
