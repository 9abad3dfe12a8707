// Package email delivers contact form notifications over SMTP.
package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"timedpost/internal/shared/services/markdown"
)

// Service sends the internal notification for a contact form submission.
// Implementations must not retain or re-expose the message content.
type Service interface {
	SendContactNotification(name, email, message string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// ToAddress is the inbox that receives contact notifications.
	ToAddress string
}

// SMTPEmailService sends mail through a single SMTP account via gomail.
type SMTPEmailService struct {
	config   SMTPConfig
	dialer   *gomail.Dialer
	markdown markdown.Service
}

func NewSMTPEmailService(config SMTPConfig, md markdown.Service) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config:   config,
		dialer:   dialer,
		markdown: md,
	}
}

var _ Service = (*SMTPEmailService)(nil)

// SendContactNotification emails the submission to the configured inbox.
// Name and email are attacker-controlled, so they are HTML-escaped; the
// message body is rendered as markdown and sanitized before embedding.
func (s *SMTPEmailService) SendContactNotification(name, email, message string) error {
	safeName := html.EscapeString(name)
	safeEmail := html.EscapeString(email)
	safeMessage, err := s.markdown.ToHTMLSanitized(message)
	if err != nil {
		return fmt.Errorf("failed to render message: %w", err)
	}

	subject := fmt.Sprintf("Contact form: %s", name)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New contact form submission</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Message:</strong></p>
			%s
		</body>
		</html>
	`, safeName, safeEmail, safeMessage)

	plainBody := fmt.Sprintf(`
New contact form submission

Name: %s
Email: %s

Message:
%s
	`, name, email, message)

	return s.sendEmail(s.config.ToAddress, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
