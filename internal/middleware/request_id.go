package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const requestIDHeader = "X-Request-ID"

// RequestID reuses the caller's request id when present so retried
// deliveries stay correlated in logs.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.Request.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}
