package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware reuses a caller's X-Trace-ID when it is a UUID and mints
// one otherwise. Anything else is dropped so it never reaches the logs.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		if incoming, err := uuid.Parse(c.GetHeader(TraceIDHeader)); err == nil {
			traceID = incoming.String()
		}

		c.Set("trace_id", traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
