package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Transport delivers a composed reminder to a recipient address. Returning an
// error marks that single delivery as failed; it never aborts a sweep.
type Transport interface {
	Send(ctx context.Context, address string, subject string, body string) error
}

// LogTransport is the fallback when no delivery channel is configured: the
// message is surfaced in the log instead of being dropped or treated as an
// error.
type LogTransport struct{}

func (LogTransport) Send(_ context.Context, address string, subject string, body string) error {
	log.Printf("notification (no transport configured): to=%s subject=%q body=%q", address, subject, body)
	return nil
}

type TelegramTransport struct {
	botToken string
	chatID   string
	client   *http.Client
}

func NewTelegramTransport(botToken string, chatID string) *TelegramTransport {
	return &TelegramTransport{
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (transport *TelegramTransport) Send(ctx context.Context, _ string, subject string, body string) error {
	message := body
	if subject != "" {
		message = subject + "\n" + body
	}

	values := url.Values{}
	values.Set("chat_id", transport.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", transport.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := transport.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(payload))
	}

	return nil
}
