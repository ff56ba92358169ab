package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer sends a single notification email to the configured recipient.
type Mailer interface {
	Send(subject, body string) error
}

// Config holds SMTP relay details.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
}

// SMTPMailer delivers mail through a plain SMTP relay. One shot, no retry;
// a failed send is the caller's problem to log.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send sends the message to the configured recipient.
func (m *SMTPMailer) Send(subject, body string) error {
	if m.cfg.Host == "" || m.cfg.To == "" {
		return fmt.Errorf("smtp relay is not configured")
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", m.cfg.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, from, []string{m.cfg.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", addr, err)
	}
	return nil
}
