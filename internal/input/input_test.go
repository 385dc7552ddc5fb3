package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	keys []string
}

func (r *recordingHandler) HandleKeyDown(key string) {
	r.keys = append(r.keys, key)
}

func TestRoundTrip(t *testing.T) {
	data, err := Marshal("ArrowUp")
	require.NoError(t, err)

	evt, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, EventKeyDown, evt.Type)
	assert.Equal(t, "ArrowUp", evt.Key)
}

func TestUnmarshalRejectsUnknownType(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"mouse_move","x":3}`))
	assert.Error(t, err)

	_, err = Unmarshal([]byte(`not json`))
	assert.Error(t, err)
}

func TestDispatcherPreservesOrderAndRepeats(t *testing.T) {
	d := NewDispatcher()
	for _, key := range []string{"ArrowUp", "ArrowUp", "a"} {
		data, err := Marshal(key)
		require.NoError(t, err)
		require.NoError(t, d.Enqueue(data))
	}

	h := &recordingHandler{}
	d.Drain(h)

	// repeats arrive as separate calls, in order
	assert.Equal(t, []string{"ArrowUp", "ArrowUp", "a"}, h.keys)

	// drained queue stays drained
	d.Drain(h)
	assert.Len(t, h.keys, 3)
}

func TestDispatcherDropsPastBacklog(t *testing.T) {
	d := NewDispatcher()
	data, err := Marshal("x")
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		require.NoError(t, d.Enqueue(data))
	}

	h := &recordingHandler{}
	d.Drain(h)
	assert.Len(t, h.keys, 64)
}
