package mailx

import (
	"context"
	"log/slog"
)

// LogMailer writes messages to the log instead of sending them. Used in dev
// and test environments where no relay is configured.
type LogMailer struct {
	Logger *slog.Logger
}

// NewLogMailer builds a mailer that logs instead of delivering.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{Logger: logger}
}

// Send logs the message and succeeds.
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.Logger.InfoContext(ctx, "mail (not delivered, log mailer)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
