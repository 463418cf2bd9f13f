// Package types 定义共享的类型和错误
package types

import (
	"context"
	"errors"
)

// 错误分类
// handler 层据此映射 HTTP 状态码
var (
	// ErrNotFound 工具或履历不存在
	ErrNotFound = errors.New("not found")
	// ErrInvalid 请求数据不合法
	ErrInvalid = errors.New("invalid request")
	// ErrNotConfigured 生成后端尚未配置 API Key
	ErrNotConfigured = errors.New("api key not configured")
	// ErrGenerationFailed 生成后端调用失败，携带后端原始信息
	ErrGenerationFailed = errors.New("generation failed")
)

// Generator 生成后端的最小能力接口
// 生产实现对接真实 Provider，测试中以确定性 stub 替换
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt, model string) (string, error)
	Configured() bool
}
