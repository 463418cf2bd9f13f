package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textgen-tools/textgen/internal/service/types"
)

// ErrorResponse 错误响应体
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Detail: msg})
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: msg})
}

// InternalServerError 500 错误响应
func InternalServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: msg})
}

// Error 按错误分类映射 HTTP 状态码
// NotFound → 404，Invalid/NotConfigured → 400，生成失败及其余 → 500
func Error(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, types.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, types.ErrInvalid), errors.Is(err, types.ErrNotConfigured):
		BadRequest(c, err.Error())
	default:
		InternalServerError(c, err.Error())
	}
}
