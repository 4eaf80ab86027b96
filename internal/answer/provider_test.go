package answer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProviderConfig
		wantErr bool
	}{
		{
			name:    "anthropic provider",
			cfg:     ProviderConfig{Provider: "anthropic", APIKey: "test-key", Model: "claude-haiku-4-5"},
			wantErr: false,
		},
		{
			name:    "openai provider",
			cfg:     ProviderConfig{Provider: "openai", APIKey: "test-key", Model: "gpt-4o-mini"},
			wantErr: false,
		},
		{
			name:    "unsupported provider",
			cfg:     ProviderConfig{Provider: "invalid", APIKey: "test-key"},
			wantErr: true,
		},
		{
			name:    "empty provider",
			cfg:     ProviderConfig{APIKey: "test-key"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := New(tt.cfg)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if provider != nil {
					t.Fatal("expected nil provider when error occurs")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if provider == nil {
				t.Fatal("expected non-nil provider")
			}

			switch tt.cfg.Provider {
			case "anthropic":
				if _, ok := provider.(*AnthropicProvider); !ok {
					t.Errorf("expected *AnthropicProvider, got %T", provider)
				}
			case "openai":
				if _, ok := provider.(*OpenAIProvider); !ok {
					t.Errorf("expected *OpenAIProvider, got %T", provider)
				}
			}
		})
	}
}

func TestOpenAIProvider_Answer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization header = %q, want bearer token", got)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"Paris is the capital of France."}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("test-key", "gpt-4o-mini")
	p.baseURL = srv.URL

	got, err := p.Answer(context.Background(), "What is the capital of France?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != "Paris is the capital of France." {
		t.Errorf("Answer = %q", got)
	}
}

func TestOpenAIProvider_Answer_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("bad-key", "gpt-4o-mini")
	p.baseURL = srv.URL

	if _, err := p.Answer(context.Background(), "anything"); err == nil {
		t.Fatal("expected error on API failure, got nil")
	}
}

func TestAnthropicProvider_Answer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key header = %q, want test-key", got)
		}
		w.Write([]byte(`{"content":[{"text":"  Paris.  "}]}`))
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", "claude-haiku-4-5")
	p.baseURL = srv.URL

	got, err := p.Answer(context.Background(), "What is the capital of France?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != "Paris." {
		t.Errorf("Answer = %q, want trimmed %q", got, "Paris.")
	}
}
