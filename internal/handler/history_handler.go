package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/textgen-tools/textgen/internal/service"
	"github.com/textgen-tools/textgen/internal/service/history"
)

// HistoryHandler 履历处理器
type HistoryHandler struct {
	svc *service.Services
}

// NewHistoryHandler 创建履历处理器
func NewHistoryHandler(svc *service.Services) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// ListHistory 列出生成履历
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.svc.History.List(c.Request.Context(), &history.ListRequest{
		Limit:  limit,
		Search: c.Query("search"),
	})
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": items})
}

// DeleteHistory 删除履历
func (h *HistoryHandler) DeleteHistory(c *gin.Context) {
	if err := h.svc.History.Delete(c.Request.Context(), c.Param("id")); err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
