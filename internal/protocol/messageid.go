package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidMessageID = errors.New("message id must be a string or a number")

// MessageID is a client-chosen message id. Clients send either a JSON string
// or a JSON number, and events echo it back in the form it was received.
type MessageID struct {
	raw string
	key string
}

// NewMessageID returns the id a client sends as a JSON string.
func NewMessageID(id string) MessageID {
	if id == "" {
		return MessageID{}
	}

	raw, _ := json.Marshal(id)
	return MessageID{raw: string(raw), key: id}
}

// Key is the id as plain text. A string id and a number id with the same
// text share a key.
func (m MessageID) Key() string {
	return m.key
}

func (m MessageID) String() string {
	return m.key
}

func (m MessageID) MarshalJSON() ([]byte, error) {
	if m.raw == "" {
		return []byte(`""`), nil
	}

	return []byte(m.raw), nil
}

func (m *MessageID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	switch c := data[0]; {
	case c == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*m = NewMessageID(id)
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidMessageID, data)
		}
		*m = MessageID{raw: n.String(), key: n.String()}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidMessageID, data)
	}

	return nil
}
