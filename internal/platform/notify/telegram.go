package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// Telegram delivers notifications through the Bot API sendMessage call.
// The recipient ID is the user's Telegram chat ID.
type Telegram struct {
	Token   string
	APIBase string
	Client  *http.Client
	Logger  *slog.Logger
}

func NewTelegram(token string, logger *slog.Logger) *Telegram {
	if logger == nil {
		logger = slog.Default()
	}
	return &Telegram{
		Token:   token,
		APIBase: defaultAPIBase,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Logger:  logger,
	}
}

func (t *Telegram) Notify(ctx context.Context, recipientID, kind string, fields map[string]string) error {
	if strings.TrimSpace(t.Token) == "" {
		return errors.New("telegram bot token is not configured")
	}
	if strings.TrimSpace(recipientID) == "" {
		return errors.New("recipient required")
	}

	text := renderMessage(kind, fields)
	payload, err := json.Marshal(map[string]string{
		"chat_id": recipientID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(t.APIBase, "/"), t.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram sendMessage status %d: %s", resp.StatusCode, string(body))
	}

	t.Logger.Debug("telegram notification sent",
		"event", "notification_sent",
		"module", "platform/notify",
		"kind", kind,
		"recipient", recipientID,
	)
	return nil
}

func (t *Telegram) client() *http.Client {
	if t.Client == nil {
		return http.DefaultClient
	}
	return t.Client
}

func renderMessage(kind string, fields map[string]string) string {
	title := fields["title"]
	switch kind {
	case "task_returned":
		return fmt.Sprintf("Task %q came back for rework (stage: %s).", title, fields["to_status"])
	case "overdue_reminder":
		return fmt.Sprintf("Task %q has been stuck in %s for more than 3 days.", title, fields["status"])
	case "followup_reminder":
		return fmt.Sprintf("Task %q was sent to media 2 days ago, time to follow up.", title)
	case "resume_reminder":
		return fmt.Sprintf("Postponed task %q is due to resume today.", title)
	default:
		return fmt.Sprintf("%s: %s", kind, title)
	}
}

// Noop swallows notifications. Used when no bot token is configured.
type Noop struct{}

func (Noop) Notify(context.Context, string, string, map[string]string) error {
	return nil
}
