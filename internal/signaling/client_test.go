package signaling

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	var (
		registered bool
		offerFrom  string
		renderers  []RendererInfo
		errMsg     string
	)
	c := NewClient("ws://unused", "viewer-1", ClientTypeViewer, Handler{
		OnRegistered: func() { registered = true },
		OnOffer: func(from string, payload json.RawMessage) {
			offerFrom = from
		},
		OnRenderersUpdated: func(list []RendererInfo) { renderers = list },
		OnError:            func(msg string) { errMsg = msg },
	})

	c.dispatch(Message{Type: TypeRegistered})
	assert.True(t, registered)

	c.dispatch(Message{Type: TypeOffer, From: "renderer-ab12", Payload: json.RawMessage(`{}`)})
	assert.Equal(t, "renderer-ab12", offerFrom)

	c.dispatch(Message{Type: TypeRenderers, List: []RendererInfo{{ID: "r1", Online: true}}})
	require.Len(t, renderers, 1)
	assert.Equal(t, "r1", renderers[0].ID)

	c.dispatch(Message{Type: TypeError, Msg: "no such renderer"})
	assert.Equal(t, "no such renderer", errMsg)

	// nil handlers and unknown types are ignored
	c.dispatch(Message{Type: TypeAnswer})
	c.dispatch(Message{Type: "no-such-type"})
}

func TestSendBeforeConnect(t *testing.T) {
	c := NewClient("ws://unused", "viewer-1", ClientTypeViewer, Handler{})
	err := c.SendOffer("renderer-1", json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestMessageEnvelopeOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(Message{Type: TypePing})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ping"}`, string(data))
}
