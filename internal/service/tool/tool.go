// Package tool 实现工具定义的注册与管理
package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/textgen-tools/textgen/internal/model"
	"github.com/textgen-tools/textgen/internal/repository"
	"github.com/textgen-tools/textgen/internal/service/types"
)

// CopySuffix 复制工具时追加到名称的后缀
const CopySuffix = " (コピー)"

// Service 工具服务
type Service struct {
	repo repository.ToolStore
}

// NewService 创建工具服务
func NewService(repo repository.ToolStore) *Service {
	return &Service{repo: repo}
}

// ToolRequest 创建/更新工具请求
type ToolRequest struct {
	Name               string             `json:"name" binding:"required"`
	Description        string             `json:"description"`
	Category           string             `json:"category" binding:"required"`
	LLMModel           string             `json:"llm_model"`
	SystemPrompt       string             `json:"system_prompt" binding:"required"`
	UserPromptTemplate string             `json:"user_prompt_template" binding:"required"`
	OutputFormat       string             `json:"output_format"`
	InputFields        []model.InputField `json:"input_fields"`
}

// ToolView 工具的 API 表现形式
// input_fields 已从存储文本还原为结构
type ToolView struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Category           string             `json:"category"`
	LLMModel           string             `json:"llm_model"`
	SystemPrompt       string             `json:"system_prompt"`
	UserPromptTemplate string             `json:"user_prompt_template"`
	OutputFormat       string             `json:"output_format"`
	InputFields        []model.InputField `json:"input_fields"`
	IsTemplate         bool               `json:"is_template"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// NewView 将存储模型转为 API 表现形式
func NewView(t *model.Tool) (*ToolView, error) {
	fields, err := DecodeInputFields(t.InputFields)
	if err != nil {
		return nil, err
	}
	return &ToolView{
		ID:                 t.ID,
		Name:               t.Name,
		Description:        t.Description,
		Category:           t.Category,
		LLMModel:           t.LLMModel,
		SystemPrompt:       t.SystemPrompt,
		UserPromptTemplate: t.UserPromptTemplate,
		OutputFormat:       t.OutputFormat,
		InputFields:        fields,
		IsTemplate:         t.IsTemplate,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}, nil
}

// DecodeInputFields 解析存储的字段定义 JSON
func DecodeInputFields(raw string) ([]model.InputField, error) {
	if raw == "" {
		return []model.InputField{}, nil
	}
	var fields []model.InputField
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("failed to decode input fields: %w", err)
	}
	return fields, nil
}

// CreateTool 创建工具
func (s *Service) CreateTool(ctx context.Context, req *ToolRequest) (*ToolView, error) {
	if err := model.ValidateInputFields(req.InputFields); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalid, err)
	}

	fieldsJSON, err := json.Marshal(req.InputFields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input fields: %w", err)
	}

	tool := &model.Tool{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		LLMModel:           req.LLMModel,
		SystemPrompt:       req.SystemPrompt,
		UserPromptTemplate: req.UserPromptTemplate,
		OutputFormat:       req.OutputFormat,
		InputFields:        string(fieldsJSON),
		IsTemplate:         false,
	}

	if err := s.repo.Create(tool); err != nil {
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}

	return NewView(tool)
}

// GetTool 获取工具
func (s *Service) GetTool(ctx context.Context, id string) (*ToolView, error) {
	tool, err := s.getModel(id)
	if err != nil {
		return nil, err
	}
	return NewView(tool)
}

// GetToolModel 获取存储模型（供编排器使用）
func (s *Service) GetToolModel(ctx context.Context, id string) (*model.Tool, error) {
	return s.getModel(id)
}

// ListTools 列出全部工具，最近创建在前
func (s *Service) ListTools(ctx context.Context) ([]*ToolView, error) {
	tools, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	views := make([]*ToolView, 0, len(tools))
	for _, t := range tools {
		view, err := NewView(t)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateTool 更新工具
// 除 id/created_at/is_template 外全字段整体替换
func (s *Service) UpdateTool(ctx context.Context, id string, req *ToolRequest) (*ToolView, error) {
	tool, err := s.getModel(id)
	if err != nil {
		return nil, err
	}

	if err := model.ValidateInputFields(req.InputFields); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalid, err)
	}

	fieldsJSON, err := json.Marshal(req.InputFields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input fields: %w", err)
	}

	tool.Name = req.Name
	tool.Description = req.Description
	tool.Category = req.Category
	tool.LLMModel = req.LLMModel
	tool.SystemPrompt = req.SystemPrompt
	tool.UserPromptTemplate = req.UserPromptTemplate
	tool.OutputFormat = req.OutputFormat
	tool.InputFields = string(fieldsJSON)
	tool.UpdatedAt = time.Now()

	if err := s.repo.Update(tool); err != nil {
		return nil, fmt.Errorf("failed to update tool: %w", err)
	}

	return NewView(tool)
}

// DeleteTool 删除工具
// 引用该工具的履历不做级联处理，履历侧保留名称快照
func (s *Service) DeleteTool(ctx context.Context, id string) error {
	if _, err := s.getModel(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	return nil
}

// DuplicateTool 复制工具
// 名称追加固定后缀，id 与时间戳重新生成，is_template 重置为 false
func (s *Service) DuplicateTool(ctx context.Context, id string) (*ToolView, error) {
	src, err := s.getModel(id)
	if err != nil {
		return nil, err
	}

	tool := &model.Tool{
		ID:                 uuid.New().String(),
		Name:               src.Name + CopySuffix,
		Description:        src.Description,
		Category:           src.Category,
		LLMModel:           src.LLMModel,
		SystemPrompt:       src.SystemPrompt,
		UserPromptTemplate: src.UserPromptTemplate,
		OutputFormat:       src.OutputFormat,
		InputFields:        src.InputFields,
		IsTemplate:         false,
	}

	if err := s.repo.Create(tool); err != nil {
		return nil, fmt.Errorf("failed to duplicate tool: %w", err)
	}

	return NewView(tool)
}

func (s *Service) getModel(id string) (*model.Tool, error) {
	tool, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tool %s", types.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}
	return tool, nil
}
