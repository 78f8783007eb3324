package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		requestID, _ := c.Get("request_id")
		errMsg, _ := c.Get("error")

		log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request handled",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.Any("request_id", requestID),
			logger.Any("error", errMsg),
		)
	}
}
