package controller

import (
	"errors"
	"net/http"

	"gridstead-backend/logic"

	"github.com/gin-gonic/gin"
)

// abortWithError maps the logic error taxonomy onto HTTP status codes.
// Conquest failure never comes through here; it is a payload, not an
// error.
func abortWithError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, logic.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, logic.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, logic.ErrConflict):
		status = http.StatusConflict
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
