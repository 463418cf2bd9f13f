// Package llm 管理生成后端的进程级会话
// API Key 可在启动时由配置注入，也可在运行中通过管理接口更换
package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/textgen-tools/textgen/internal/config"
	"github.com/textgen-tools/textgen/internal/service/types"
)

// 生成参数，全 Provider 共通
const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 4000
)

// Provider 具体后端的调用接口
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt, model string) (string, error)
}

// Client 进程级生成后端会话
// 所有生成请求共享同一凭证，读写以 RWMutex 保护
type Client struct {
	mu       sync.RWMutex
	provider Provider

	newProvider func(ctx context.Context, apiKey string) (Provider, error)
}

// NewClient 根据配置创建会话
// 配置中已有 API Key 时立即初始化，否则保持未配置状态
func NewClient(cfg *config.Config) (*Client, error) {
	c := &Client{}

	switch cfg.AI.Provider {
	case "", "gemini":
		c.newProvider = func(ctx context.Context, apiKey string) (Provider, error) {
			return newGeminiProvider(ctx, apiKey)
		}
	case "openai":
		baseURL := cfg.AI.OpenAI.BaseURL
		c.newProvider = func(ctx context.Context, apiKey string) (Provider, error) {
			return newOpenAIProvider(apiKey, baseURL), nil
		}
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.AI.Provider)
	}

	apiKey := cfg.AI.Gemini.APIKey
	if cfg.AI.Provider == "openai" {
		apiKey = cfg.AI.OpenAI.APIKey
	}
	if apiKey != "" {
		if err := c.Configure(apiKey); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Configure 设置（或更换）API Key
func (c *Client) Configure(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("%w: api key is empty", types.ErrInvalid)
	}

	provider, err := c.newProvider(context.Background(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to init provider: %w", err)
	}

	c.mu.Lock()
	c.provider = provider
	c.mu.Unlock()
	return nil
}

// Configured 是否已设置凭证
func (c *Client) Configured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.provider != nil
}

// Generate 调用生成后端
// 未配置时返回 ErrNotConfigured，后端错误包装为 ErrGenerationFailed
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt, model string) (string, error) {
	c.mu.RLock()
	provider := c.provider
	c.mu.RUnlock()

	if provider == nil {
		return "", types.ErrNotConfigured
	}

	output, err := provider.Generate(ctx, systemPrompt, userPrompt, model)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrGenerationFailed, err)
	}
	return output, nil
}

var _ types.Generator = (*Client)(nil)
