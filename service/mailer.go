package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type EmailMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// HTTPMailer posts messages to a transactional email API that accepts
// Resend-style JSON payloads authenticated with a bearer key.
type HTTPMailer struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func NewHTTPMailer(apiURL, apiKey string, timeout time.Duration) *HTTPMailer {
	return &HTTPMailer{
		apiKey: apiKey,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (m *HTTPMailer) Send(ctx context.Context, msg EmailMessage) error {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", m.apiKey))

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email API error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}

// LogMailer only logs messages. Used when no email API key is configured.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg EmailMessage) error {
	log.Ctx(ctx).Info().
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Msg("email not sent, no API key configured")
	return nil
}
