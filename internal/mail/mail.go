// Package mail sends outbound email over SMTP behind a circuit breaker.
package mail

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/metrics"
)

// Config holds SMTP configuration.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
	AppName  string
}

// Message is a rendered email ready for delivery.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// SendFunc delivers a raw message. It matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Sender delivers templated email. A breaker stops hammering a failing SMTP relay.
type Sender struct {
	config  Config
	server  string
	auth    smtp.Auth
	send    SendFunc
	breaker *gobreaker.CircuitBreaker
}

// NewSender creates a sender. It is usable when the host is empty; every send
// then returns domain.ErrMailDisabled.
func NewSender(config Config) *Sender {
	return NewSenderWithTransport(config, smtp.SendMail)
}

// NewSenderWithTransport creates a sender with a custom transport.
func NewSenderWithTransport(config Config, send SendFunc) *Sender {
	if config.AppName == "" {
		config.AppName = "Blog Platform"
	}
	var auth smtp.Auth
	if config.Username != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &Sender{
		config:  config,
		server:  config.Host + ":" + config.Port,
		auth:    auth,
		send:    send,
		breaker: newBreaker("smtp"),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// IsConfigured returns true if SMTP delivery is configured.
func (s *Sender) IsConfigured() bool {
	return s.config.Host != "" && s.config.Port != "" && s.config.From != ""
}

// Send delivers msg, recording the result under the template name.
func (s *Sender) Send(templateName string, msg Message) error {
	if !s.IsConfigured() {
		metrics.EmailsTotal.WithLabelValues(templateName, "disabled").Inc()
		logger.Info("Mail disabled, message not sent",
			slog.String("template", templateName),
			slog.String("subject", msg.Subject),
		)
		return domain.ErrMailDisabled
	}

	raw := s.build(msg)
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.send(s.server, s.auth, s.config.From, msg.To, raw)
	})
	if err != nil {
		result := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "rejected"
		}
		metrics.EmailsTotal.WithLabelValues(templateName, result).Inc()
		return fmt.Errorf("send %s email: %w", templateName, err)
	}

	metrics.EmailsTotal.WithLabelValues(templateName, "success").Inc()
	return nil
}

func (s *Sender) build(msg Message) []byte {
	from := s.config.From
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&buf, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=UTF-8\r\n")
	fmt.Fprintf(&buf, "\r\n")
	fmt.Fprintf(&buf, "%s\r\n", msg.HTML)
	return buf.Bytes()
}

// SendPasswordReset emails a password reset link.
func (s *Sender) SendPasswordReset(to, userName, resetURL string) error {
	html, err := render(passwordResetTemplate, map[string]string{
		"AppName":  s.config.AppName,
		"UserName": userName,
		"ResetURL": resetURL,
	})
	if err != nil {
		return fmt.Errorf("render password reset template: %w", err)
	}

	return s.Send("password_reset", Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Reset your %s password", s.config.AppName),
		HTML:    html,
	})
}

// SendContact forwards a contact form submission to the site owner.
func (s *Sender) SendContact(to string, m domain.ContactMessage) error {
	subject := headerSafe(m.Subject)
	html, err := render(contactTemplate, map[string]string{
		"AppName": s.config.AppName,
		"Name":    m.Name,
		"Email":   m.Email,
		"Subject": subject,
		"Message": m.Message,
	})
	if err != nil {
		return fmt.Errorf("render contact template: %w", err)
	}

	return s.Send("contact", Message{
		To:      []string{to},
		ReplyTo: headerSafe(m.Email),
		Subject: fmt.Sprintf("[%s] %s", s.config.AppName, subject),
		HTML:    html,
	})
}

// headerSafe strips line breaks so user input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Reset your {{.AppName}} password</title></head>
<body style="font-family: sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">
    <h2>Password Reset Request</h2>
    <p>Hi {{.UserName}},</p>
    <p>We received a request to reset your password. Follow the link below to choose a new one:</p>
    <p><a href="{{.ResetURL}}">Reset Password</a></p>
    <p style="word-break: break-all;">{{.ResetURL}}</p>
    <p><strong>This link expires in 1 hour.</strong></p>
    <p style="font-size: 12px; color: #666;">If you didn't request a password reset, you can ignore this email.</p>
</body>
</html>`))

var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{.Subject}}</title></head>
<body style="font-family: sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">
    <h2>New message via {{.AppName}}</h2>
    <p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
</body>
</html>`))
