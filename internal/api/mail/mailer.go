// Package mail sends transactional email. Delivery is a fire-and-forget
// capability: there is no queueing or retry, a failed send surfaces as a
// single error to the caller who decides whether it matters.
package mail

import (
	"context"
	"log/slog"
)

// Mailer delivers a single HTML message.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// LogMailer logs messages instead of delivering them. Used in development
// when no SMTP relay is configured, so registration still works end to end.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.Logger.Info("mail suppressed (no SMTP configured)",
		"to", to,
		"subject", subject,
	)
	return nil
}
