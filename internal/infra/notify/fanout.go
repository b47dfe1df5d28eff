package notify

import (
	"auction-hall/internal/usecase"

	"github.com/google/uuid"
)

// Fanout delivers every event to each configured sink.
type Fanout struct {
	sinks []usecase.Notifier
}

func NewFanout(sinks ...usecase.Notifier) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Broadcast(event string, fields map[string]string) {
	for _, s := range f.sinks {
		s.Broadcast(event, fields)
	}
}

func (f *Fanout) SendToAccount(account uuid.UUID, event string, fields map[string]string) {
	for _, s := range f.sinks {
		s.SendToAccount(account, event, fields)
	}
}
