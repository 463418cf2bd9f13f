package repository

import (
	"github.com/textgen-tools/textgen/internal/model"
	"gorm.io/gorm"
)

// ToolRepository 工具数据访问
type ToolRepository struct {
	db *gorm.DB
}

// NewToolRepository 创建工具仓库
func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

// Create 创建工具
func (r *ToolRepository) Create(tool *model.Tool) error {
	return r.db.Create(tool).Error
}

// GetByID 获取工具
func (r *ToolRepository) GetByID(id string) (*model.Tool, error) {
	var tool model.Tool
	err := r.db.Where("id = ?", id).First(&tool).Error
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// List 列出全部工具，最近创建在前
func (r *ToolRepository) List() ([]*model.Tool, error) {
	var tools []*model.Tool
	err := r.db.Order("created_at DESC").Find(&tools).Error
	return tools, err
}

// Update 更新工具
func (r *ToolRepository) Update(tool *model.Tool) error {
	return r.db.Save(tool).Error
}

// Delete 删除工具
func (r *ToolRepository) Delete(id string) error {
	return r.db.Delete(&model.Tool{}, "id = ?", id).Error
}

// CountTemplates 统计内置模板数量
func (r *ToolRepository) CountTemplates() (int64, error) {
	var count int64
	err := r.db.Model(&model.Tool{}).Where("is_template = ?", true).Count(&count).Error
	return count, err
}
