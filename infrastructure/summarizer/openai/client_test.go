package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "docextract-app-api/core/errors"
)

func TestNewClient_EmptyAPIKey(t *testing.T) {
	client, err := NewClient("", time.Second)

	if err == nil {
		t.Error("NewClient should reject an empty API key")
	}
	if client != nil {
		t.Error("NewClient should return nil client on error")
	}
}

func TestSummarize_SendsPromptAndDecodesSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q, want bearer test-key", auth)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "quarterly revenue grew") {
			t.Error("prompt should carry the document text")
		}
		if !strings.Contains(req.Messages[0].Content, "Write all output in French.") {
			t.Error("prompt should carry the target language")
		}

		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Role: "assistant", Content: `{"summary":"Revenue grew.","key_points":["growth"]}`}},
			},
		})
	}))
	defer server.Close()

	client, _ := NewClient("test-key", 5*time.Second, WithBaseURL(server.URL))

	summary, err := client.Summarize(context.Background(), "quarterly revenue grew", "French")

	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary.Summary != "Revenue grew." {
		t.Errorf("summary = %q, want Revenue grew.", summary.Summary)
	}
	if len(summary.KeyPoints) != 1 {
		t.Errorf("key points = %v, want 1 entry", summary.KeyPoints)
	}
}

func TestSummarize_FencedReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Content: "```json\n{\"summary\":\"Fenced.\"}\n```"}},
			},
		})
	}))
	defer server.Close()

	client, _ := NewClient("test-key", 5*time.Second, WithBaseURL(server.URL))

	summary, err := client.Summarize(context.Background(), "text", "")

	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary.Summary != "Fenced." {
		t.Errorf("summary = %q, want Fenced.", summary.Summary)
	}
}

func TestSummarize_ServerErrorBecomesServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, _ := NewClient("test-key", 5*time.Second, WithBaseURL(server.URL))

	_, err := client.Summarize(context.Background(), "text", "")

	if apperrors.KindOf(err) != apperrors.KindServiceUnavailable {
		t.Errorf("error kind = %v, want service_unavailable", apperrors.KindOf(err))
	}
}

func TestSummarize_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{})
	}))
	defer server.Close()

	client, _ := NewClient("test-key", 5*time.Second, WithBaseURL(server.URL))

	_, err := client.Summarize(context.Background(), "text", "")

	if apperrors.KindOf(err) != apperrors.KindServiceUnavailable {
		t.Errorf("error kind = %v, want service_unavailable", apperrors.KindOf(err))
	}
}

func TestSummarize_DeadlineBecomesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, _ := NewClient("test-key", 5*time.Second, WithBaseURL(server.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Summarize(ctx, "text", "")

	if apperrors.KindOf(err) != apperrors.KindTimeout {
		t.Errorf("error kind = %v, want timeout", apperrors.KindOf(err))
	}
}
