package controllers

import (
	"net/http"

	"orderdesk-backend/operations"

	"github.com/gin-gonic/gin"
)

func statusFor(kind operations.FailureKind) int {
	switch kind {
	case operations.FailureValidation:
		return http.StatusBadRequest
	case operations.FailureNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respond writes an operation envelope with okStatus on success.
func respond[T any](c *gin.Context, okStatus int, env operations.Envelope[T]) {
	if env.Success {
		c.JSON(okStatus, env)
		return
	}
	c.JSON(statusFor(env.Kind), env)
}
