package repository

import (
	"github.com/textgen-tools/textgen/internal/model"
	"gorm.io/gorm"
)

// HistoryRepository 生成履历数据访问
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository 创建履历仓库
func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create 追加履历
func (r *HistoryRepository) Create(h *model.History) error {
	return r.db.Create(h).Error
}

// List 列出履历，最近在前
// search 非空时对工具名或输出做大小写不敏感的子串匹配
func (r *HistoryRepository) List(limit int, search string) ([]*model.History, error) {
	var items []*model.History
	q := r.db.Order("created_at DESC").Limit(limit)
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(tool_name) LIKE LOWER(?) OR LOWER(output) LIKE LOWER(?)", pattern, pattern)
	}
	err := q.Find(&items).Error
	return items, err
}

// Delete 删除履历，id 不存在时也返回成功
func (r *HistoryRepository) Delete(id string) error {
	return r.db.Delete(&model.History{}, "id = ?", id).Error
}
