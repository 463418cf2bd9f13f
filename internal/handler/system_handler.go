package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textgen-tools/textgen/internal/service"
)

// SystemHandler 系统状态与凭证配置
type SystemHandler struct {
	svc *service.Services
}

// NewSystemHandler 创建系统处理器
func NewSystemHandler(svc *service.Services) *SystemHandler {
	return &SystemHandler{svc: svc}
}

// GetStatus 获取 API 状态
func (h *SystemHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Init.Status(c.Request.Context()))
}

// SetAPIKeyRequest 设置 API Key 请求
type SetAPIKeyRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// SetAPIKey 设置生成后端凭证（进程级）
func (h *SystemHandler) SetAPIKey(c *gin.Context) {
	var req SetAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.svc.LLM.Configure(req.APIKey); err != nil {
		BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "APIキーを設定しました"})
}
