package handler

import (
	"errors"
	"net/http"

	"github.com/blues/cfe/internal/engine"
	"github.com/gin-gonic/gin"
)

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// EngineErrorResponse 把引擎错误映射为HTTP响应
func EngineErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, statusOf(err), err.Error())
}

// statusOf 引擎错误对应的HTTP状态码
func statusOf(err error) int {
	switch {
	case errors.Is(err, engine.ErrCampaignNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, engine.ErrPaused):
		return http.StatusServiceUnavailable
	case errors.Is(err, engine.ErrTransferFailed):
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}
