package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textgen-tools/textgen/internal/service"
	"github.com/textgen-tools/textgen/internal/service/generation"
)

// GenerateHandler 生成处理器
type GenerateHandler struct {
	svc *service.Services
}

// NewGenerateHandler 创建生成处理器
func NewGenerateHandler(svc *service.Services) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

// Generate 执行一次文本生成
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req generation.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	result, err := h.svc.Generation.Generate(c.Request.Context(), &req)
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"output":     result.Output,
		"history_id": result.HistoryID,
	})
}
