package transport

import (
	"fmt"

	"github.com/pion/webrtc/v4"
)

// Channel labels. Frames tolerate loss; input must arrive in order so
// movement keys replay exactly as pressed.
const (
	FramesLabel = "frames"
	InputLabel  = "input"
)

// DataChannelTransport carries frames and input over two WebRTC
// DataChannels.
type DataChannelTransport struct {
	framesDC *webrtc.DataChannel
	inputDC  *webrtc.DataChannel

	onFrame func(data []byte)
	onInput func(data []byte)
}

// NewDataChannelTransport wraps the frames and input channels. Either
// may be nil and set later, for the side that adopts announced
// channels.
func NewDataChannelTransport(framesDC, inputDC *webrtc.DataChannel) *DataChannelTransport {
	t := &DataChannelTransport{}
	if framesDC != nil {
		t.SetFramesChannel(framesDC)
	}
	if inputDC != nil {
		t.SetInputChannel(inputDC)
	}
	return t
}

func (t *DataChannelTransport) SendFrame(data []byte) error {
	if t.framesDC == nil {
		return fmt.Errorf("frames data channel not set")
	}
	return t.framesDC.Send(data)
}

func (t *DataChannelTransport) SendInput(data []byte) error {
	if t.inputDC == nil {
		return fmt.Errorf("input data channel not set")
	}
	return t.inputDC.Send(data)
}

func (t *DataChannelTransport) OnFrame(cb func(data []byte)) {
	t.onFrame = cb
}

func (t *DataChannelTransport) OnInput(cb func(data []byte)) {
	t.onInput = cb
}

// SetFramesChannel sets or replaces the frames DataChannel.
func (t *DataChannelTransport) SetFramesChannel(dc *webrtc.DataChannel) {
	t.framesDC = dc
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		if t.onFrame != nil {
			t.onFrame(msg.Data)
		}
	})
}

// SetInputChannel sets or replaces the input DataChannel.
func (t *DataChannelTransport) SetInputChannel(dc *webrtc.DataChannel) {
	t.inputDC = dc
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		if t.onInput != nil {
			t.onInput(msg.Data)
		}
	})
}
