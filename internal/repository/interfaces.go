// Package repository 定义数据访问接口
// 接口抽象使依赖注入和单元测试成为可能
package repository

import "github.com/textgen-tools/textgen/internal/model"

// ToolStore 工具数据访问接口
// Service 层依赖接口，测试中以内存 mock 替换
type ToolStore interface {
	Create(tool *model.Tool) error
	GetByID(id string) (*model.Tool, error)
	List() ([]*model.Tool, error)
	Update(tool *model.Tool) error
	Delete(id string) error
	CountTemplates() (int64, error)
}

// HistoryStore 履历数据访问接口
type HistoryStore interface {
	Create(h *model.History) error
	List(limit int, search string) ([]*model.History, error)
	Delete(id string) error
}

var _ ToolStore = (*ToolRepository)(nil)
var _ HistoryStore = (*HistoryRepository)(nil)
