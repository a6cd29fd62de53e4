package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mythos_backend/pkg/logger"
)

// Response is the body of every non-2xx reply.
type Response struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Success writes data as the raw 200 body.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data as the raw 201 body.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// ValidationFailed reports a body that did not pass binding, with one entry per field.
func ValidationFailed(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, Response{
		Message: message,
		Errors:  ValidationErrors(err),
	})
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// InternalError logs err and replies 500 with message. err never reaches the client.
func InternalError(c *gin.Context, err error, message string) {
	logger.Log.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String(RequestIDKey, c.GetString(RequestIDKey)),
	)
	Error(c, http.StatusInternalServerError, message)
}
