package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an id so log lines from one mutation
// cycle can be correlated. An incoming X-Request-Id is kept.
func RequestID(ctx *gin.Context) {
	id := ctx.GetHeader("X-Request-Id")
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set("request_id", id)
	ctx.Writer.Header().Set("X-Request-Id", id)
	ctx.Next()
}
