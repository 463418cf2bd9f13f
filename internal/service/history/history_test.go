package history

import (
	"context"
	"strings"
	"testing"

	"github.com/textgen-tools/textgen/internal/model"
)

// mockHistoryRepo 内存履历仓库
// 保持追加顺序，按最新在前返回
type mockHistoryRepo struct {
	items []*model.History
}

func (m *mockHistoryRepo) Create(h *model.History) error {
	m.items = append(m.items, h)
	return nil
}

func (m *mockHistoryRepo) List(limit int, search string) ([]*model.History, error) {
	result := make([]*model.History, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		h := m.items[i]
		if search != "" {
			needle := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(h.ToolName), needle) &&
				!strings.Contains(strings.ToLower(h.Output), needle) {
				continue
			}
		}
		result = append(result, h)
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (m *mockHistoryRepo) Delete(id string) error {
	for i, h := range m.items {
		if h.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestListHistory(t *testing.T) {
	repo := &mockHistoryRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	repo.Create(&model.History{ID: "h1", ToolName: "SEO記事生成ツール", Inputs: `{"keyword":"旅行"}`, Output: "記事本文"})
	repo.Create(&model.History{ID: "h2", ToolName: "メール文章生成ツール", Inputs: `{}`, Output: "Mail Body"})
	repo.Create(&model.History{ID: "h3", ToolName: "SEO記事生成ツール", Inputs: `{}`, Output: "別の記事"})

	t.Run("newest first with default limit", func(t *testing.T) {
		items, err := svc.List(ctx, &ListRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("len = %d, want 3", len(items))
		}
		if items[0].ID != "h3" || items[2].ID != "h1" {
			t.Errorf("wrong order: %s, %s, %s", items[0].ID, items[1].ID, items[2].ID)
		}
		if items[2].Inputs["keyword"] != "旅行" {
			t.Errorf("inputs not decoded: %+v", items[2].Inputs)
		}
	})

	t.Run("limit applies", func(t *testing.T) {
		items, err := svc.List(ctx, &ListRequest{Limit: 1})
		if err != nil {
			t.Fatal(err)
		}
		if len(items) != 1 || items[0].ID != "h3" {
			t.Errorf("limit=1 should return newest only, got %d items", len(items))
		}
	})

	t.Run("search matches tool name case-insensitively", func(t *testing.T) {
		items, err := svc.List(ctx, &ListRequest{Search: "seo"})
		if err != nil {
			t.Fatal(err)
		}
		if len(items) != 2 {
			t.Errorf("len = %d, want 2", len(items))
		}
	})

	t.Run("search matches output", func(t *testing.T) {
		items, err := svc.List(ctx, &ListRequest{Search: "mail body"})
		if err != nil {
			t.Fatal(err)
		}
		if len(items) != 1 || items[0].ID != "h2" {
			t.Errorf("output search failed: %d items", len(items))
		}
	})
}

func TestDeleteHistory(t *testing.T) {
	repo := &mockHistoryRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	repo.Create(&model.History{ID: "h1", ToolName: "t", Output: "o"})

	if err := svc.Delete(ctx, "h1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.items) != 0 {
		t.Error("record should be deleted")
	}

	// id 不存在时同样成功
	if err := svc.Delete(ctx, "missing"); err != nil {
		t.Errorf("delete of absent id should succeed, got %v", err)
	}
}
