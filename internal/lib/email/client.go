// Package email sends transactional email through Resend.
//
// HTML bodies are rendered from templates embedded in the binary, the
// same way database migrations are shipped.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/deppfellow/accounts-service/internal/config"
)

//go:embed templates/*.html
var templates embed.FS

// Client wraps the Resend client with sender identity from config.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email client using the configured API key and
// sender identity.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Email.ResendAPIKey),
		from:   fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromAddress),
		logger: logger,
	}
}

// SendEmail renders the named template with data and sends it to a
// single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	tmpl, err := template.ParseFS(templates, fmt.Sprintf("templates/%s.html", templateName))
	if err != nil {
		return errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
