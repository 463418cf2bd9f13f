package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"
)

// OpenAIProvider 通过 eino 调用 OpenAI 兼容端点
// 模型名由工具定义逐次指定，ChatModel 按请求构建
type OpenAIProvider struct {
	apiKey  string
	baseURL string
}

func newOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	return &OpenAIProvider{apiKey: apiKey, baseURL: baseURL}
}

// Generate 发送 chat completion 请求
func (p *OpenAIProvider) Generate(ctx context.Context, systemPrompt, userPrompt, model string) (string, error) {
	temperature := float32(defaultTemperature)
	maxTokens := defaultMaxTokens

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      p.apiKey,
		BaseURL:     p.baseURL,
		Model:       model,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat model: %w", err)
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: userPrompt},
	}

	resp, err := chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("openai generation failed: %w", err)
	}

	return resp.Content, nil
}
