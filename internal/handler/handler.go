package handler

import (
	"github.com/textgen-tools/textgen/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	System   *SystemHandler
	Tool     *ToolHandler
	Generate *GenerateHandler
	History  *HistoryHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		System:   NewSystemHandler(svc),
		Tool:     NewToolHandler(svc),
		Generate: NewGenerateHandler(svc),
		History:  NewHistoryHandler(svc),
	}
}
