package notify

import (
	"context"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
)

// Log writes notifications to the log. It stands in for the broker in local runs.
type Log struct {
	logger logx.Logger
}

// NewLog creates a Log notifier.
func NewLog(logger logx.Logger) *Log {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Log{logger: logger}
}

// Notify logs n.
func (l *Log) Notify(_ context.Context, n domain.Notification) error {
	l.logger.Info("notification",
		logx.String("event", "notification_sent"),
		logx.String("user_id", n.UserID),
		logx.String("type", n.Type),
		logx.String("title", n.Title),
	)
	return nil
}
