package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mvcc_assessment_backend/internal/config"
	"mvcc_assessment_backend/internal/util"
)

func aiTestConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		BaseURL:   baseURL,
		APIKey:    "test-key",
		Model:     "test-model",
		Timeout:   2 * time.Second,
		MaxTokens: 500,
	}
}

func TestAIServiceGenerate(t *testing.T) {
	var gotAuth, gotPath string
	var gotReq chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	svc := NewAIService(aiTestConfig(server.URL))
	reply, err := svc.Generate(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if reply != "hello there" {
		t.Fatalf("reply = %q", reply)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotReq.Model != "test-model" || gotReq.MaxTokens != 500 {
		t.Fatalf("request = %+v", gotReq)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "the prompt" {
		t.Fatalf("messages = %+v", gotReq.Messages)
	}
}

func TestAIServiceGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		if _, err := w.Write([]byte(`{"error":{"message":"rate limited"}}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	svc := NewAIService(aiTestConfig(server.URL))
	_, err := svc.Generate(context.Background(), "the prompt")
	if err == nil || !strings.Contains(err.Error(), "status 429") {
		t.Fatalf("err = %v", err)
	}
}

func TestAIServiceGenerateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{"choices":[]}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	svc := NewAIService(aiTestConfig(server.URL))
	if _, err := svc.Generate(context.Background(), "the prompt"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestAIServiceGenerateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	cfg := aiTestConfig(server.URL)
	cfg.Timeout = 20 * time.Millisecond

	svc := NewAIService(cfg)
	_, err := svc.Generate(context.Background(), "the prompt")
	if !errors.Is(err, util.ErrGenerationTimeout) {
		t.Fatalf("err = %v, want ErrGenerationTimeout", err)
	}
}
