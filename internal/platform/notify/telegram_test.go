package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTelegramSendsMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tg := NewTelegram("test-token", nil)
	tg.APIBase = server.URL

	err := tg.Notify(context.Background(), "12345", "overdue_reminder", map[string]string{
		"title":  "Fintech profile",
		"status": "editor_review",
	})
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if gotPath != "/bottest-token/sendMessage" {
		t.Fatalf("wrong path: %s", gotPath)
	}
	if gotBody["chat_id"] != "12345" {
		t.Fatalf("wrong chat id: %s", gotBody["chat_id"])
	}
	if !strings.Contains(gotBody["text"], "Fintech profile") || !strings.Contains(gotBody["text"], "editor_review") {
		t.Fatalf("wrong text: %s", gotBody["text"])
	}
}

func TestTelegramPropagatesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusForbidden)
	}))
	defer server.Close()

	tg := NewTelegram("test-token", nil)
	tg.APIBase = server.URL

	if err := tg.Notify(context.Background(), "12345", "resume_reminder", nil); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}

func TestTelegramRequiresToken(t *testing.T) {
	tg := NewTelegram("", nil)

	if err := tg.Notify(context.Background(), "12345", "resume_reminder", nil); err == nil {
		t.Fatalf("expected error without token")
	}
}
