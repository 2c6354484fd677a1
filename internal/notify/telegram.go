package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Event kinds sent to the moderation chat.
const (
	EventReviewRequestCreated  = "review_request_created"
	EventReviewRequestApproved = "review_request_approved"
	EventReviewRequestRejected = "review_request_rejected"
	EventClaimCreated          = "claim_created"
	EventClaimApproved         = "claim_approved"
	EventClaimRejected         = "claim_rejected"
)

// TelegramNotifier sends fire-and-forget messages to a Telegram chat.
// Delivery failures are logged and swallowed: notifications never make the
// primary database operation fail.
type TelegramNotifier struct {
	botToken string
	chatID   string
	client   *http.Client
	log      *zap.SugaredLogger
}

func NewTelegramNotifier(botToken, chatID string, log *zap.SugaredLogger) *TelegramNotifier {
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// Notify formats the event into a plain-text message and posts it.
// Returns false when delivery failed or the notifier is not configured.
func (n *TelegramNotifier) Notify(ctx context.Context, event string, fields map[string]any) bool {
	if n == nil || n.botToken == "" || n.chatID == "" {
		return false
	}

	payload := map[string]any{
		"chat_id": n.chatID,
		"text":    formatMessage(event, fields),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		n.log.Warnw("telegram notify: marshal failed", "event", event, "err", err)
		return false
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		n.log.Warnw("telegram notify: request failed", "event", event, "err", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Warnw("telegram notify: send failed", "event", event, "err", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		n.log.Warnw("telegram notify: non-200 response", "event", event, "status", resp.StatusCode)
		return false
	}
	return true
}

func formatMessage(event string, fields map[string]any) string {
	var b strings.Builder
	b.WriteString("[SafeLogist] ")
	b.WriteString(event)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString(fmt.Sprintf("\n%s: %v", k, fields[k]))
	}
	return b.String()
}
