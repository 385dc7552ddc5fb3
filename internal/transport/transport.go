// Package transport moves encoded frames one way and input events the
// other.
package transport

// FrameSender sends encoded frames.
type FrameSender interface {
	SendFrame(data []byte) error
}

// FrameReceiver receives encoded frames.
type FrameReceiver interface {
	OnFrame(callback func(data []byte))
}

// InputSender sends serialized input events.
type InputSender interface {
	SendInput(data []byte) error
}

// InputReceiver receives serialized input events.
type InputReceiver interface {
	OnInput(callback func(data []byte))
}
