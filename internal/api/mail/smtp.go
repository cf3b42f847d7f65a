package mail

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPMailer delivers mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Password: password, From: from}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.Host == "" || m.User == "" {
		return fmt.Errorf("smtp not configured")
	}

	// net/smtp has no context support; honor cancellation up front at least.
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.User, m.Password, m.Host)
	msg := []byte("To: " + to + "\r\n" +
		"From: " + m.From + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"\r\n" + htmlBody + "\r\n")

	return smtp.SendMail(addr, auth, m.From, []string{to}, msg)
}
