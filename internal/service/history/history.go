// Package history 实现生成履历的查询与删除
// 履历为追加写入，只在生成成功时由编排器写入
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/textgen-tools/textgen/internal/model"
	"github.com/textgen-tools/textgen/internal/repository"
)

// 列表件数的既定值与上限
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Service 履历服务
type Service struct {
	repo repository.HistoryStore
}

// NewService 创建履历服务
func NewService(repo repository.HistoryStore) *Service {
	return &Service{repo: repo}
}

// HistoryView 履历的 API 表现形式
type HistoryView struct {
	ID        string                 `json:"id"`
	ToolID    string                 `json:"tool_id"`
	ToolName  string                 `json:"tool_name"`
	Inputs    map[string]interface{} `json:"inputs"`
	Output    string                 `json:"output"`
	CreatedAt time.Time              `json:"created_at"`
}

// ListRequest 履历查询条件
type ListRequest struct {
	Limit  int
	Search string
}

// List 列出履历，最近在前
func (s *Service) List(ctx context.Context, req *ListRequest) ([]*HistoryView, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	items, err := s.repo.List(limit, req.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	views := make([]*HistoryView, 0, len(items))
	for _, h := range items {
		view, err := NewView(h)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Delete 删除履历
// id 不存在时同样视为成功
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	return nil
}

// NewView 将存储模型转为 API 表现形式
func NewView(h *model.History) (*HistoryView, error) {
	inputs := map[string]interface{}{}
	if h.Inputs != "" {
		if err := json.Unmarshal([]byte(h.Inputs), &inputs); err != nil {
			return nil, fmt.Errorf("failed to decode history inputs: %w", err)
		}
	}
	return &HistoryView{
		ID:        h.ID,
		ToolID:    h.ToolID,
		ToolName:  h.ToolName,
		Inputs:    inputs,
		Output:    h.Output,
		CreatedAt: h.CreatedAt,
	}, nil
}
