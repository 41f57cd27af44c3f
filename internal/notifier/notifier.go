package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/duboisderek/lottodraw/pkg/clients"
)

const (
	EventDrawStarting = "draw_starting"
	EventWinner       = "winner"
)

// Notifier delivers draw events to users. Delivery is fire-and-forget:
// callers log failures and never let them block admission or
// settlement.
type Notifier interface {
	Notify(ctx context.Context, event string, payload any) error
}

type message struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	SentAt  time.Time `json:"sent_at"`
}

// WebhookNotifier POSTs events to a configured webhook URL.
type WebhookNotifier struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhook(url string, client clients.HTTPClientI) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: client,
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, event string, payload any) error {
	body, err := json.Marshal(message{
		Event:   event,
		Payload: payload,
		SentAt:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("can't marshal notification: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	statusCode, _, err := n.client.Post(n.url, headers, body)
	if err != nil {
		return fmt.Errorf("can't deliver notification: %w", err)
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification endpoint returned status %d", statusCode)
	}
	return nil
}

// LogNotifier is the fallback when no webhook URL is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, event string, payload any) error {
	zap.L().Info("notification", zap.String("event", event), zap.Any("payload", payload))
	return nil
}

// New picks the webhook delivery when a URL is configured, the log
// fallback otherwise.
func New(url string, client clients.HTTPClientI) Notifier {
	if url == "" {
		return LogNotifier{}
	}
	return NewWebhook(url, client)
}
