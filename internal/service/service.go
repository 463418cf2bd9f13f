package service

import (
	"github.com/textgen-tools/textgen/internal/config"
	"github.com/textgen-tools/textgen/internal/repository"
	"github.com/textgen-tools/textgen/internal/service/generation"
	"github.com/textgen-tools/textgen/internal/service/history"
	"github.com/textgen-tools/textgen/internal/service/initialization"
	"github.com/textgen-tools/textgen/internal/service/llm"
	"github.com/textgen-tools/textgen/internal/service/tool"
)

// Services 服务集合
type Services struct {
	Tool       *tool.Service
	History    *history.Service
	Generation *generation.Service
	Init       *initialization.Service

	// 进程级生成后端会话
	LLM *llm.Client

	Config *config.Config
}

// NewServices 创建所有服务
func NewServices(repos *repository.Repositories, cfg *config.Config) (*Services, error) {
	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Services{
		Tool:       tool.NewService(repos.Tool),
		History:    history.NewService(repos.History),
		Generation: generation.NewService(repos.Tool, repos.History, llmClient),
		Init:       initialization.NewService(repos.Tool, llmClient),
		LLM:        llmClient,
		Config:     cfg,
	}, nil
}
