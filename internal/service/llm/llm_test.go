package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/textgen-tools/textgen/internal/service/types"
)

// stubProvider 确定性后端
type stubProvider struct {
	output string
	err    error
}

func (s *stubProvider) Generate(ctx context.Context, systemPrompt, userPrompt, model string) (string, error) {
	return s.output, s.err
}

func newStubClient(p Provider, err error) *Client {
	return &Client{
		newProvider: func(ctx context.Context, apiKey string) (Provider, error) {
			return p, err
		},
	}
}

func TestClientConfigure(t *testing.T) {
	c := newStubClient(&stubProvider{output: "ok"}, nil)

	if c.Configured() {
		t.Error("client should start unconfigured")
	}

	if err := c.Configure(""); !errors.Is(err, types.ErrInvalid) {
		t.Errorf("empty key should be ErrInvalid, got %v", err)
	}
	if c.Configured() {
		t.Error("failed configure must not mark client configured")
	}

	if err := c.Configure("test-key"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Configured() {
		t.Error("client should be configured after Configure")
	}
}

func TestClientGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		c := newStubClient(&stubProvider{}, nil)
		_, err := c.Generate(ctx, "sys", "user", "gemini-2.0-flash")
		if !errors.Is(err, types.ErrNotConfigured) {
			t.Errorf("want ErrNotConfigured, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		c := newStubClient(&stubProvider{output: "generated"}, nil)
		if err := c.Configure("key"); err != nil {
			t.Fatal(err)
		}
		out, err := c.Generate(ctx, "sys", "user", "gemini-2.0-flash")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "generated" {
			t.Errorf("output = %q, want %q", out, "generated")
		}
	})

	t.Run("backend failure wraps ErrGenerationFailed", func(t *testing.T) {
		c := newStubClient(&stubProvider{err: errors.New("quota exceeded")}, nil)
		if err := c.Configure("key"); err != nil {
			t.Fatal(err)
		}
		_, err := c.Generate(ctx, "sys", "user", "gemini-2.0-flash")
		if !errors.Is(err, types.ErrGenerationFailed) {
			t.Errorf("want ErrGenerationFailed, got %v", err)
		}
	})
}
