// Package mailer is the best-effort email side channel. Delivery
// failures are logged and swallowed; no caller ever fails because an
// email did not go out.
package mailer

import (
	"log/slog"

	gomail "gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(to, subject, body string)
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		slog.Warn("mail send failed", "to", to, "subject", subject, "err", err)
	}
}

// Noop stands in when SMTP is not configured.
type Noop struct{}

func (Noop) Send(to, subject, _ string) {
	slog.Debug("mail skipped, smtp not configured", "to", to, "subject", subject)
}
