package item

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrEmptyKind = errors.New("item kind cannot be empty")

// Payload is the opaque handle for the thing being auctioned. The auction
// core never inspects attrs; it only clones, compares and serializes them.
type Payload struct {
	kind  string
	attrs json.RawMessage
}

func NewPayload(kind string, attrs json.RawMessage) (Payload, error) {
	if kind == "" {
		return Payload{}, ErrEmptyKind
	}
	return Payload{kind: kind, attrs: cloneRaw(attrs)}, nil
}

func (p Payload) Kind() string {
	return p.kind
}

func (p Payload) Attrs() json.RawMessage {
	return cloneRaw(p.attrs)
}

// Clone returns an independent copy so later mutation of the original
// bytes does not alias the auctioned payload.
func (p Payload) Clone() Payload {
	return Payload{kind: p.kind, attrs: cloneRaw(p.attrs)}
}

func (p Payload) Equal(other Payload) bool {
	return p.kind == other.kind && bytes.Equal(p.attrs, other.attrs)
}

func (p Payload) IsZero() bool {
	return p.kind == ""
}

type payloadJSON struct {
	Kind  string          `json:"kind"`
	Attrs json.RawMessage `json:"attrs,omitempty"`
}

func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(payloadJSON{Kind: p.kind, Attrs: p.attrs})
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw payloadJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind == "" {
		return ErrEmptyKind
	}
	p.kind = raw.Kind
	p.attrs = cloneRaw(raw.Attrs)
	return nil
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}
