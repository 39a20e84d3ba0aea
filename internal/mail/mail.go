package mail

import (
	"fmt"
	"net/smtp"

	"tradehub/utils"
)

// Mailer delivers a message to a single recipient. Implementations are
// fire-and-forget from the caller's point of view: the core never retries.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through an authenticated SMTP relay
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// Send delivers a plain-text message via SMTP
func (m *SMTPMailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		m.Sender, to, subject, body)

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	if err := smtp.SendMail(addr, auth, m.Sender, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("mail: send to %s: %w", to, err)
	}
	return nil
}

// LogMailer logs messages instead of sending them. Used in development and
// tests, where no SMTP credentials are configured.
type LogMailer struct{}

// Send logs the message at info level and always succeeds
func (m *LogMailer) Send(to, subject, body string) error {
	utils.Info("mail (log only)", map[string]any{
		"to":      to,
		"subject": subject,
		"body":    body,
	})
	return nil
}
