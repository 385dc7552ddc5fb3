package signaling

import "encoding/json"

// Message types for the signaling protocol.
const (
	TypeRegister      = "register"
	TypeRegistered    = "registered"
	TypeListRenderers = "list-renderers"
	TypeRenderers     = "renderers"
	TypeOffer         = "offer"
	TypeAnswer        = "answer"
	TypeICECandidate  = "ice-candidate"
	TypePing          = "ping"
	TypePong          = "pong"
	TypeError         = "error"

	TypeRendererDisconnected = "renderer-disconnected"
)

// ClientType distinguishes the rendering side from the viewing side.
const (
	ClientTypeRenderer = "renderer"
	ClientTypeViewer   = "viewer"
)

// Message is the envelope for all signaling messages.
type Message struct {
	Type       string          `json:"type"`
	ID         string          `json:"id,omitempty"`
	ClientType string          `json:"clientType,omitempty"`
	From       string          `json:"from,omitempty"`
	Target     string          `json:"target,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	List       []RendererInfo  `json:"list,omitempty"`
	RendererID string          `json:"rendererId,omitempty"`
	Msg        string          `json:"message,omitempty"`
}

// RendererInfo describes a renderer in the renderer list.
type RendererInfo struct {
	ID     string `json:"id"`
	Online bool   `json:"online"`
}
