package notify

import (
	"time"

	"github.com/google/uuid"
)

// Envelope is the wire form of one auction event. Account is set only for
// direct sends.
type Envelope struct {
	Event   string            `json:"event"`
	Account *uuid.UUID        `json:"account,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	At      time.Time         `json:"at"`
}
