package email

//go:generate go run go.uber.org/mock/mockgen -source=./email.go -destination=./mocks/email_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"tourbook/config"
	"tourbook/infras/otel"
	"tourbook/shared/constant"
)

const (
	maxErrorBodyBytes = 1 << 10
	sendPath          = "/send"
)

var ErrNotConfigured = errors.New("email api url is not configured")

// Message is the payload accepted by the email API. Template names a template
// rendered by the provider with Data.
type Message struct {
	To       string `json:"to"`
	From     string `json:"from,omitempty"`
	Template string `json:"template"`
	Subject  string `json:"subject"`
	Data     any    `json:"data"`
}

type Client interface {
	Send(ctx context.Context, msg Message) error
}

type clientImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
	otel       otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	timeout := time.Duration(cfg.External.Email.TimeoutSeconds) * time.Second

	return &clientImpl{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.External.Email.APIURL, "/"),
		apiKey:     cfg.External.Email.APIKey,
		from:       cfg.External.Email.From,
		otel:       otel,
	}
}

func (c *clientImpl) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".email.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if c.baseURL == "" {
		return ErrNotConfigured
	}

	if msg.From == "" {
		msg.From = c.from
	}

	scope.SetAttributes(map[string]any{
		"email.template": msg.Template,
	})

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal email message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	if c.apiKey != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("template", msg.Template).Msg("failed to call email api")

		return fmt.Errorf("failed to call email api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		log.Error().
			Int("status", resp.StatusCode).
			Str("template", msg.Template).
			Str("body", string(detail)).
			Msg("email api rejected message")

		return fmt.Errorf("email api responded %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	scope.SetAttribute("http.status_code", resp.StatusCode)

	return nil
}
