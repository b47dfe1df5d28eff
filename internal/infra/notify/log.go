package notify

import (
	"log/slog"

	"github.com/google/uuid"
)

// LogNotifier writes events to the structured log. It doubles as the
// always-available fallback when no other sink is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Broadcast(event string, fields map[string]string) {
	n.logger.Info("broadcast", "event", event, "fields", fields)
}

func (n *LogNotifier) SendToAccount(account uuid.UUID, event string, fields map[string]string) {
	n.logger.Info("notify", "event", event, "account", account, "fields", fields)
}
