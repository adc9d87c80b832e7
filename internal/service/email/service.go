package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	"portal-layanan-publik/internal/config"
)

type Service interface {
	SendNotificationEmail(ctx context.Context, toEmail, fullName, title, message string) error
	SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error
}

type service struct {
	client *resend.Client
	config *config.Config
	tmpl   *template.Template
}

const notificationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1f2933;">
  <h2>{{.Title}}</h2>
  <p>Halo {{.Name}},</p>
  <p>{{.Message}}</p>
  <p><a href="{{.Link}}">Buka Portal Layanan Publik</a></p>
</body>
</html>`

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	tmpl := template.Must(template.New("notification").Parse(notificationTemplate))
	return &service{
		client: client,
		config: cfg,
		tmpl:   tmpl,
	}
}

func (s *service) send(toEmail, subject, title, name, message string) error {
	data := struct {
		Title   string
		Name    string
		Message string
		Link    string
	}{
		Title:   title,
		Name:    name,
		Message: message,
		Link:    fmt.Sprintf("https://%s/dashboard", s.config.Domain),
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Portal Layanan Publik <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendNotificationEmail(ctx context.Context, toEmail, fullName, title, message string) error {
	if s.config.ResendAPIKey == "" {
		return nil
	}
	return s.send(toEmail, title, title, fullName, message)
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error {
	if s.config.ResendAPIKey == "" {
		return nil
	}
	return s.send(
		toEmail,
		"Selamat Datang di Portal Layanan Publik",
		"Selamat Datang di Portal Layanan Publik",
		fullName,
		"Akun Anda telah dibuat. Anda dapat mengajukan permohonan layanan kapan saja.",
	)
}
