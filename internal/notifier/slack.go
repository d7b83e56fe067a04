package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// SlackNotifier posts messages to a Slack incoming webhook.
type SlackNotifier struct {
	WebhookURL string
	Client     *http.Client
}

// NewSlackNotifier creates a notifier with a fixed request timeout.
func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		WebhookURL: webhookURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// slackPayload is the webhook body. Link and media previews are suppressed.
type slackPayload struct {
	Text        string `json:"text"`
	UnfurlLinks bool   `json:"unfurl_links"`
	UnfurlMedia bool   `json:"unfurl_media"`
}

// Post sends the text to the webhook. A non-2xx status is logged and reported
// as ok=false without an error, so the retry wrapper never treats it as
// transient; the error return is reserved for transport failures.
func (s *SlackNotifier) Post(text string) (bool, error) {
	body, err := json.Marshal(slackPayload{Text: text})
	if err != nil {
		return false, fmt.Errorf("marshal payload: %w", err)
	}
	resp, err := s.Client.Post(s.WebhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("[ERROR] slack webhook error: status %d, body: %s", resp.StatusCode, string(respBody))
		return false, nil
	}

	log.Println("[INFO] posted to slack successfully")
	return true, nil
}
