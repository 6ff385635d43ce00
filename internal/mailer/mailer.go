// Package mailer delivers transactional mail through an external HTTP
// mail provider. When no API key is configured, delivery degrades to
// logging the message so local setups work without a provider account.
package mailer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/centraplate/registry/internal/config"
	"github.com/centraplate/registry/internal/logger"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

// Mailer sends a single plain-text message. Implementations must be
// safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

// NewMailer returns an HTTP-backed mailer when an API key is configured
// and a log-only mailer otherwise.
func NewMailer(cfg config.Mailer, log *logger.Logger) Mailer {
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Warn().Msg("mailer API key is empty: outgoing mail will only be logged")
		return &logMailer{logger: log}
	}
	return newHTTPMailer(cfg)
}

type message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type httpMailer struct {
	client *resty.Client
	from   string
}

func newHTTPMailer(cfg config.Mailer) *httpMailer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey)

	return &httpMailer{client: cli, from: cfg.From}
}

func (m *httpMailer) Send(ctx context.Context, to string, subject string, body string) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message{From: m.from, To: to, Subject: subject, Text: body}).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		text := strings.TrimSpace(string(resp.Body()))
		if text == "" {
			text = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("send mail: http %d: %s", resp.StatusCode(), text)
	}

	return nil
}

type logMailer struct {
	logger *logger.Logger
}

func (m *logMailer) Send(_ context.Context, to string, subject string, body string) error {
	m.logger.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("outgoing mail (log-only delivery)")
	return nil
}
