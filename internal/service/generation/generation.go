// Package generation 实现生成编排
// 解决工具 → 渲染提示词 → 调用后端 → 写入履历
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/textgen-tools/textgen/internal/model"
	"github.com/textgen-tools/textgen/internal/repository"
	"github.com/textgen-tools/textgen/internal/service/prompt"
	"github.com/textgen-tools/textgen/internal/service/types"
)

// Service 生成编排器
type Service struct {
	tools     repository.ToolStore
	histories repository.HistoryStore
	generator types.Generator
}

// NewService 创建生成编排器
func NewService(tools repository.ToolStore, histories repository.HistoryStore, generator types.Generator) *Service {
	return &Service{tools: tools, histories: histories, generator: generator}
}

// GenerateRequest 生成请求
type GenerateRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Inputs map[string]interface{} `json:"inputs"`
}

// GenerateResult 生成结果
type GenerateResult struct {
	Output    string `json:"output"`
	HistoryID string `json:"history_id"`
}

// Generate 执行一次生成并记录履历
// 后端调用不重试；履历写入失败时错误原样返回给调用方
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	if !s.generator.Configured() {
		return nil, types.ErrNotConfigured
	}

	tool, err := s.tools.GetByID(req.ToolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tool %s", types.ErrNotFound, req.ToolID)
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}

	userPrompt := prompt.Render(tool.UserPromptTemplate, req.Inputs)
	userPrompt = prompt.AppendOutputFormat(userPrompt, tool.OutputFormat)

	output, err := s.generator.Generate(ctx, tool.SystemPrompt, userPrompt, tool.LLMModel)
	if err != nil {
		return nil, err
	}

	historyID, err := s.saveHistory(tool, req.Inputs, output)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{Output: output, HistoryID: historyID}, nil
}

func (s *Service) saveHistory(tool *model.Tool, inputs map[string]interface{}, output string) (string, error) {
	if inputs == nil {
		inputs = map[string]interface{}{}
	}
	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal inputs: %w", err)
	}

	h := &model.History{
		ID:       uuid.New().String(),
		ToolID:   tool.ID,
		ToolName: tool.Name,
		Inputs:   string(inputsJSON),
		Output:   output,
	}

	if err := s.histories.Create(h); err != nil {
		return "", fmt.Errorf("failed to save history: %w", err)
	}
	return h.ID, nil
}
