package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/karinaconstandache/PhotoBooker/internal/config"
	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

// Sender delivers transactional mail. SendWelcome is best effort for callers.
type Sender interface {
	SendWelcome(ctx context.Context, to, fullName string, photographer bool) error
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif;">
  <h2>Welcome to PhotoBooker, {{.FullName}}!</h2>
  <p>Your account is ready. {{if .IsPhotographer}}Create your first portfolio to start showing your work.{{else}}Start browsing photographers and their portfolios.{{end}}</p>
  <p style="color: #888;">&copy; {{.Year}} PhotoBooker</p>
</body>
</html>`))

type ResendSender struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

// NewSender returns a Resend backed sender, or a no-op one when no API key
// is configured.
func NewSender(cfg *config.Config, logger *zap.Logger) Sender {
	if !cfg.EmailEnabled() {
		logger.Info("email delivery disabled")
		return NopSender{}
	}
	return &ResendSender{
		client:   resend.NewClient(cfg.Email.ResendAPIKey),
		from:     cfg.Email.FromAddress,
		fromName: cfg.Email.FromName,
		logger:   logger.Named("email"),
	}
}

func (s *ResendSender) SendWelcome(_ context.Context, to, fullName string, photographer bool) error {
	html, err := renderWelcome(fullName, photographer)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: "Welcome to PhotoBooker!",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}

	s.logger.Info("welcome email sent", zap.String("to", to), zap.String("id", resp.Id))
	return nil
}

func renderWelcome(fullName string, isPhotographer bool) (string, error) {
	var body bytes.Buffer
	err := welcomeTemplate.Execute(&body, map[string]interface{}{
		"FullName":       fullName,
		"IsPhotographer": isPhotographer,
		"Year":           time.Now().Year(),
	})
	if err != nil {
		return "", fmt.Errorf("render welcome template: %w", err)
	}
	return body.String(), nil
}

type NopSender struct{}

func (NopSender) SendWelcome(context.Context, string, string, bool) error { return nil }
