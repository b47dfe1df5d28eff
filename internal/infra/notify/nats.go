package notify

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	broadcastSubjectPrefix = "auction.events."
	accountSubjectPrefix   = "auction.accounts."
)

// NATSNotifier publishes auction events for out-of-process consumers.
// Publishes are fire-and-forget; a failed publish is logged and dropped.
type NATSNotifier struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewNATSNotifier(url string, logger *slog.Logger) (*NATSNotifier, func(), error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { conn.Close() }
	return &NATSNotifier{conn: conn, logger: logger}, cleanup, nil
}

func (n *NATSNotifier) Broadcast(event string, fields map[string]string) {
	n.publish(broadcastSubjectPrefix+event, Envelope{Event: event, Fields: fields, At: time.Now()})
}

func (n *NATSNotifier) SendToAccount(account uuid.UUID, event string, fields map[string]string) {
	n.publish(accountSubjectPrefix+account.String(),
		Envelope{Event: event, Account: &account, Fields: fields, At: time.Now()})
}

func (n *NATSNotifier) publish(subject string, env Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		n.logger.Warn("failed to encode event", "event", env.Event, "error", err)
		return
	}
	if err := n.conn.Publish(subject, data); err != nil {
		n.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}
