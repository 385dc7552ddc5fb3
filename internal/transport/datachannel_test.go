package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendWithoutChannels(t *testing.T) {
	tr := NewDataChannelTransport(nil, nil)
	assert.Error(t, tr.SendFrame([]byte("frame")))
	assert.Error(t, tr.SendInput([]byte("input")))
}

func TestChannelLabels(t *testing.T) {
	// the labels are protocol: both peers match on them
	assert.Equal(t, "frames", FramesLabel)
	assert.Equal(t, "input", InputLabel)
}
