package mailer

import (
	"fmt"
	"net/smtp"

	"user-portal/pkg/utils"

	"go.uber.org/zap"
)

// Mailer is the outbound mail capability consumed by the auth flow.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(config utils.EmailConfig) *SMTPMailer {
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", config.Host, config.Port),
		auth: smtp.PlainAuth("", config.User, config.Password, config.Host),
		from: config.From,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

// LogMailer writes mail to the log instead of delivering it. Used when no
// SMTP host is configured, so OTP codes stay visible during development.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(to, subject, body string) error {
	m.log.Info("Mail (not delivered, no SMTP host configured)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
