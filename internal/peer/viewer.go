package peer

import (
	"encoding/json"
	"log"

	"github.com/pion/webrtc/v4"

	"github.com/gmalmquist/gwendr/internal/signaling"
	"github.com/gmalmquist/gwendr/internal/transport"
)

// Viewer is the viewing side of the connection: it offers, receives
// frames, and sends key events.
type Viewer struct {
	pc         *webrtc.PeerConnection
	sig        *signaling.Client
	transport  *transport.DataChannelTransport
	rendererID string
}

// NewViewer creates a viewer-side peer targeting the given renderer.
// The renderer announces the data channels; the viewer adopts them as
// they arrive.
func NewViewer(sig *signaling.Client, rendererID string) (*Viewer, error) {
	pc, err := NewPeerConnection()
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		pc:         pc,
		sig:        sig,
		transport:  transport.NewDataChannelTransport(nil, nil),
		rendererID: rendererID,
	}

	pc.OnDataChannel(func(dc *webrtc.DataChannel) {
		log.Printf("data channel received: %s", dc.Label())
		switch dc.Label() {
		case transport.FramesLabel:
			v.transport.SetFramesChannel(dc)
		case transport.InputLabel:
			v.transport.SetInputChannel(dc)
		}
	})

	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			return
		}
		data, err := json.Marshal(c.ToJSON())
		if err != nil {
			log.Printf("marshal ICE candidate: %v", err)
			return
		}
		_ = sig.SendICECandidate(rendererID, data)
	})

	return v, nil
}

// Transport returns the channel pair for receiving frames and sending
// input.
func (v *Viewer) Transport() *transport.DataChannelTransport {
	return v.transport
}

// Connect initiates the session by creating and sending an offer.
func (v *Viewer) Connect() error {
	offer, err := v.pc.CreateOffer(nil)
	if err != nil {
		return err
	}

	if err := v.pc.SetLocalDescription(offer); err != nil {
		return err
	}

	offerJSON, err := json.Marshal(offer)
	if err != nil {
		return err
	}

	return v.sig.SendOffer(v.rendererID, offerJSON)
}

// HandleAnswer processes the renderer's SDP answer.
func (v *Viewer) HandleAnswer(payload json.RawMessage) error {
	var answer webrtc.SessionDescription
	if err := json.Unmarshal(payload, &answer); err != nil {
		return err
	}
	return v.pc.SetRemoteDescription(answer)
}

// HandleICECandidate adds a remote ICE candidate.
func (v *Viewer) HandleICECandidate(payload json.RawMessage) error {
	var candidate webrtc.ICECandidateInit
	if err := json.Unmarshal(payload, &candidate); err != nil {
		return err
	}
	return v.pc.AddICECandidate(candidate)
}

// Close shuts down the peer connection.
func (v *Viewer) Close() {
	if v.pc != nil {
		v.pc.Close()
	}
}
