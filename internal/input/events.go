// Package input defines the wire format for key events crossing the
// viewer/renderer boundary, and applies them to a program.
package input

import (
	"encoding/json"
	"fmt"
)

// EventType identifies the kind of input event.
type EventType string

const (
	EventKeyDown EventType = "key_down"
)

// KeyEvent is the wire format for key events sent over the input
// channel. Key uses DOM KeyboardEvent.key names so a browser front end
// can emit the same stream.
type KeyEvent struct {
	Type EventType `json:"type"`
	Key  string    `json:"key"`
}

// Marshal serializes a key-down event for the given key.
func Marshal(key string) ([]byte, error) {
	return json.Marshal(KeyEvent{Type: EventKeyDown, Key: key})
}

// Unmarshal parses a key event, rejecting unknown event types.
func Unmarshal(data []byte) (KeyEvent, error) {
	var evt KeyEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return KeyEvent{}, fmt.Errorf("unmarshal key event: %w", err)
	}
	if evt.Type != EventKeyDown {
		return KeyEvent{}, fmt.Errorf("unknown input event type %q", evt.Type)
	}
	return evt, nil
}
