// Package mail delivers transactional mail.
package mail

import (
	"context"
	"log/slog"

	"github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
)

// LogMailer writes mail to the structured log instead of sending it. It
// stands in until a delivery provider is wired up; password-reset flows work
// against it in development.
type LogMailer struct {
	logger *slog.Logger
}

var _ services.Mailer = (*LogMailer)(nil)

// NewLogMailer creates a LogMailer on the given logger.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.InfoContext(ctx, "outgoing mail",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)
	return nil
}
