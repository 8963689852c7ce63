package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"ecobrands/internal/config"
)

// SuggestionMessage is the template payload sent when a visitor suggests a brand.
type SuggestionMessage struct {
	BrandName      string `json:"brand_name"`
	Website        string `json:"website"`
	SubmitterName  string `json:"submitter_name"`
	SubmitterEmail string `json:"submitter_email"`
}

// Sender triggers a transactional email.
type Sender interface {
	SendSuggestion(ctx context.Context, msg SuggestionMessage) error
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams SuggestionMessage `json:"template_params"`
}

// EmailJS sends template emails through the EmailJS REST API.
// Each call is a single attempt.
type EmailJS struct {
	cfg    config.EmailConfig
	client *http.Client
}

var _ Sender = (*EmailJS)(nil)

// NewEmailJS creates a sender with a traced HTTP client.
func NewEmailJS(cfg config.EmailConfig) *EmailJS {
	return &EmailJS{
		cfg: cfg,
		client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// SendSuggestion posts msg to the configured template.
func (e *EmailJS) SendSuggestion(ctx context.Context, msg SuggestionMessage) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      e.cfg.ServiceID,
		TemplateID:     e.cfg.TemplateID,
		UserID:         e.cfg.PublicKey,
		AccessToken:    e.cfg.PrivateKey,
		TemplateParams: msg,
	})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("send email: status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
