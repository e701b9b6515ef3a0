package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogSender writes messages to the log instead of dispatching them. Used in
// development when Twilio credentials are not configured.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("sender", "log"))}
}

func (s *LogSender) Send(ctx context.Context, phoneNumber, message string) error {
	s.log.Info("Message (not dispatched, dev sender)",
		zap.String("to", phoneNumber),
		zap.String("message", message),
	)
	return nil
}
