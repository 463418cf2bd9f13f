// Package generation 提供生成编排器单元测试
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/textgen-tools/textgen/internal/model"
	"github.com/textgen-tools/textgen/internal/service/types"
)

// mockToolRepo 只读工具仓库
type mockToolRepo struct {
	tools map[string]*model.Tool
}

func (m *mockToolRepo) Create(tool *model.Tool) error { m.tools[tool.ID] = tool; return nil }

func (m *mockToolRepo) GetByID(id string) (*model.Tool, error) {
	if tool, ok := m.tools[id]; ok {
		return tool, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockToolRepo) List() ([]*model.Tool, error)   { return nil, nil }
func (m *mockToolRepo) Update(tool *model.Tool) error  { return nil }
func (m *mockToolRepo) Delete(id string) error         { return nil }
func (m *mockToolRepo) CountTemplates() (int64, error) { return 0, nil }

// mockHistoryRepo 记录写入的履历
type mockHistoryRepo struct {
	items       []*model.History
	createError error
}

func (m *mockHistoryRepo) Create(h *model.History) error {
	if m.createError != nil {
		return m.createError
	}
	m.items = append(m.items, h)
	return nil
}

func (m *mockHistoryRepo) List(limit int, search string) ([]*model.History, error) {
	return m.items, nil
}

func (m *mockHistoryRepo) Delete(id string) error { return nil }

// stubGenerator 确定性生成后端
type stubGenerator struct {
	configured bool
	output     string
	err        error

	gotSystem string
	gotUser   string
	gotModel  string
}

func (g *stubGenerator) Generate(ctx context.Context, systemPrompt, userPrompt, model string) (string, error) {
	g.gotSystem = systemPrompt
	g.gotUser = userPrompt
	g.gotModel = model
	if g.err != nil {
		return "", g.err
	}
	return g.output, nil
}

func (g *stubGenerator) Configured() bool { return g.configured }

func testTool() *model.Tool {
	return &model.Tool{
		ID:                 "tool-1",
		Name:               "挨拶ツール",
		LLMModel:           "gemini-2.0-flash",
		SystemPrompt:       "あなたは挨拶の達人です。",
		UserPromptTemplate: "Hi {{name}}",
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		tools := &mockToolRepo{tools: map[string]*model.Tool{"tool-1": testTool()}}
		histories := &mockHistoryRepo{}
		gen := &stubGenerator{configured: true, output: "Hello Bob"}
		svc := NewService(tools, histories, gen)

		result, err := svc.Generate(ctx, &GenerateRequest{
			ToolID: "tool-1",
			Inputs: map[string]interface{}{"name": "Bob"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Output != "Hello Bob" {
			t.Errorf("output = %q, want %q", result.Output, "Hello Bob")
		}
		if result.HistoryID == "" {
			t.Error("history id should be set")
		}

		if gen.gotSystem != "あなたは挨拶の達人です。" {
			t.Errorf("system prompt = %q", gen.gotSystem)
		}
		if gen.gotUser != "Hi Bob" {
			t.Errorf("rendered prompt = %q, want %q", gen.gotUser, "Hi Bob")
		}
		if gen.gotModel != "gemini-2.0-flash" {
			t.Errorf("model = %q", gen.gotModel)
		}

		if len(histories.items) != 1 {
			t.Fatalf("history count = %d, want 1", len(histories.items))
		}
		h := histories.items[0]
		if h.ID != result.HistoryID || h.ToolID != "tool-1" || h.ToolName != "挨拶ツール" || h.Output != "Hello Bob" {
			t.Errorf("history snapshot mismatch: %+v", h)
		}
		var inputs map[string]interface{}
		if err := json.Unmarshal([]byte(h.Inputs), &inputs); err != nil {
			t.Fatal(err)
		}
		if inputs["name"] != "Bob" {
			t.Errorf("inputs snapshot = %v", inputs)
		}
	})

	t.Run("output format appended", func(t *testing.T) {
		tool := testTool()
		tool.OutputFormat = "Markdown形式で出力"
		tools := &mockToolRepo{tools: map[string]*model.Tool{"tool-1": tool}}
		gen := &stubGenerator{configured: true, output: "x"}
		svc := NewService(tools, &mockHistoryRepo{}, gen)

		if _, err := svc.Generate(ctx, &GenerateRequest{ToolID: "tool-1", Inputs: map[string]interface{}{"name": "Bob"}}); err != nil {
			t.Fatal(err)
		}
		want := "Hi Bob\n\n【出力形式】\nMarkdown形式で出力"
		if gen.gotUser != want {
			t.Errorf("prompt = %q, want %q", gen.gotUser, want)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		tools := &mockToolRepo{tools: map[string]*model.Tool{"tool-1": testTool()}}
		svc := NewService(tools, &mockHistoryRepo{}, &stubGenerator{configured: false})

		_, err := svc.Generate(ctx, &GenerateRequest{ToolID: "tool-1"})
		if !errors.Is(err, types.ErrNotConfigured) {
			t.Errorf("want ErrNotConfigured, got %v", err)
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		tools := &mockToolRepo{tools: map[string]*model.Tool{}}
		svc := NewService(tools, &mockHistoryRepo{}, &stubGenerator{configured: true})

		_, err := svc.Generate(ctx, &GenerateRequest{ToolID: "missing"})
		if !errors.Is(err, types.ErrNotFound) {
			t.Errorf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("backend failure surfaces without history write", func(t *testing.T) {
		tools := &mockToolRepo{tools: map[string]*model.Tool{"tool-1": testTool()}}
		histories := &mockHistoryRepo{}
		backendErr := errors.New("quota exceeded")
		svc := NewService(tools, histories, &stubGenerator{configured: true, err: backendErr})

		_, err := svc.Generate(ctx, &GenerateRequest{ToolID: "tool-1"})
		if !errors.Is(err, backendErr) {
			t.Errorf("backend error should pass through, got %v", err)
		}
		if len(histories.items) != 0 {
			t.Error("failed generation must not write history")
		}
	})

	t.Run("history write failure surfaces", func(t *testing.T) {
		tools := &mockToolRepo{tools: map[string]*model.Tool{"tool-1": testTool()}}
		histories := &mockHistoryRepo{createError: errors.New("disk full")}
		svc := NewService(tools, histories, &stubGenerator{configured: true, output: "lost"})

		_, err := svc.Generate(ctx, &GenerateRequest{ToolID: "tool-1"})
		if err == nil {
			t.Error("history write failure must surface to the caller")
		}
	})
}
