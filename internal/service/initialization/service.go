// Package initialization 负责启动时的初始数据投入与系统状态
package initialization

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/textgen-tools/textgen/internal/model"
	"github.com/textgen-tools/textgen/internal/repository"
	"github.com/textgen-tools/textgen/internal/service/types"
)

// 状态文案（UI 展示用日文固定文言）
const (
	msgConfigured    = "APIキーが設定されています"
	msgNotConfigured = "APIキーを設定してください"
)

// Service 初始化服务
type Service struct {
	repo      repository.ToolStore
	generator types.Generator
}

// NewService 创建初始化服务
func NewService(repo repository.ToolStore, generator types.Generator) *Service {
	return &Service{repo: repo, generator: generator}
}

// StatusResponse API 状态响应
type StatusResponse struct {
	APIKeyConfigured bool   `json:"api_key_configured"`
	Message          string `json:"message"`
}

// Status 返回生成后端的配置状态
func (s *Service) Status(ctx context.Context) *StatusResponse {
	if s.generator.Configured() {
		return &StatusResponse{APIKeyConfigured: true, Message: msgConfigured}
	}
	return &StatusResponse{APIKeyConfigured: false, Message: msgNotConfigured}
}

// EnsureSeedTemplates 投入内置模板
// 已存在 is_template 记录时不做任何操作（幂等）
func (s *Service) EnsureSeedTemplates(ctx context.Context) error {
	count, err := s.repo.CountTemplates()
	if err != nil {
		return fmt.Errorf("failed to count templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, seed := range seedTemplates {
		fieldsJSON, err := json.Marshal(seed.InputFields)
		if err != nil {
			return fmt.Errorf("failed to marshal seed fields: %w", err)
		}

		tool := &model.Tool{
			ID:                 uuid.New().String(),
			Name:               seed.Name,
			Description:        seed.Description,
			Category:           seed.Category,
			LLMModel:           seed.LLMModel,
			SystemPrompt:       seed.SystemPrompt,
			UserPromptTemplate: seed.UserPromptTemplate,
			OutputFormat:       seed.OutputFormat,
			InputFields:        string(fieldsJSON),
			IsTemplate:         true,
		}

		if err := s.repo.Create(tool); err != nil {
			return fmt.Errorf("failed to insert seed template %q: %w", seed.Name, err)
		}
	}

	return nil
}
