package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textgen-tools/textgen/internal/service"
	"github.com/textgen-tools/textgen/internal/service/tool"
)

// ToolHandler 工具处理器
type ToolHandler struct {
	svc *service.Services
}

// NewToolHandler 创建工具处理器
func NewToolHandler(svc *service.Services) *ToolHandler {
	return &ToolHandler{svc: svc}
}

// ListTools 列出全部工具
func (h *ToolHandler) ListTools(c *gin.Context) {
	tools, err := h.svc.Tool.ListTools(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tools": tools})
}

// GetTool 获取工具
func (h *ToolHandler) GetTool(c *gin.Context) {
	t, err := h.svc.Tool.GetTool(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tool": t})
}

// CreateTool 创建工具
func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req tool.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	created, err := h.svc.Tool.CreateTool(c.Request.Context(), &req)
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tool_id": created.ID})
}

// UpdateTool 更新工具
func (h *ToolHandler) UpdateTool(c *gin.Context) {
	var req tool.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if _, err := h.svc.Tool.UpdateTool(c.Request.Context(), c.Param("id"), &req); err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteTool 删除工具
func (h *ToolHandler) DeleteTool(c *gin.Context) {
	if err := h.svc.Tool.DeleteTool(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DuplicateTool 复制工具
func (h *ToolHandler) DuplicateTool(c *gin.Context) {
	dup, err := h.svc.Tool.DuplicateTool(c.Request.Context(), c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tool_id": dup.ID})
}
