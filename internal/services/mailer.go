package services

import (
	"context"
	"log/slog"
)

// LogMailer is the Mailer used when no delivery provider is configured; it
// only records that a notice would have been sent.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendVerifiedNotice(_ context.Context, toEmail string) error {
	m.logger.Info("email verified, notice suppressed (no mail provider configured)", "email", toEmail)
	return nil
}
