package peer

import (
	"encoding/json"
	"log"

	"github.com/pion/webrtc/v4"

	"github.com/gmalmquist/gwendr/internal/signaling"
	"github.com/gmalmquist/gwendr/internal/transport"
)

// Renderer is the rendering side of the connection: it answers a
// viewer's offer, pushes frames out, and takes key events in.
type Renderer struct {
	pc        *webrtc.PeerConnection
	sig       *signaling.Client
	transport *transport.DataChannelTransport
	peerID    string // the viewer we're connected to
}

// NewRenderer creates a renderer-side peer. The data channels are
// created up front so they are in the local description when the
// answer goes out.
func NewRenderer(sig *signaling.Client) (*Renderer, error) {
	pc, err := NewPeerConnection()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		pc:  pc,
		sig: sig,
	}

	// Frames drop rather than queue behind a slow link.
	framesOrdered := false
	framesMaxRetransmits := uint16(0)
	framesDC, err := pc.CreateDataChannel(transport.FramesLabel, &webrtc.DataChannelInit{
		Ordered:        &framesOrdered,
		MaxRetransmits: &framesMaxRetransmits,
	})
	if err != nil {
		pc.Close()
		return nil, err
	}

	// Key events replay in press order.
	inputOrdered := true
	inputDC, err := pc.CreateDataChannel(transport.InputLabel, &webrtc.DataChannelInit{
		Ordered: &inputOrdered,
	})
	if err != nil {
		pc.Close()
		return nil, err
	}

	r.transport = transport.NewDataChannelTransport(framesDC, inputDC)

	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil || r.peerID == "" {
			return
		}
		data, err := json.Marshal(c.ToJSON())
		if err != nil {
			log.Printf("marshal ICE candidate: %v", err)
			return
		}
		_ = sig.SendICECandidate(r.peerID, data)
	})

	return r, nil
}

// Transport returns the channel pair for sending frames and receiving
// input.
func (r *Renderer) Transport() *transport.DataChannelTransport {
	return r.transport
}

// HandleOffer processes an incoming offer from a viewer and sends the
// answer back through signaling.
func (r *Renderer) HandleOffer(from string, payload json.RawMessage) error {
	r.peerID = from

	var offer webrtc.SessionDescription
	if err := json.Unmarshal(payload, &offer); err != nil {
		return err
	}

	if err := r.pc.SetRemoteDescription(offer); err != nil {
		return err
	}

	answer, err := r.pc.CreateAnswer(nil)
	if err != nil {
		return err
	}

	if err := r.pc.SetLocalDescription(answer); err != nil {
		return err
	}

	answerJSON, err := json.Marshal(answer)
	if err != nil {
		return err
	}

	return r.sig.SendAnswer(from, answerJSON)
}

// HandleICECandidate adds a remote ICE candidate.
func (r *Renderer) HandleICECandidate(payload json.RawMessage) error {
	var candidate webrtc.ICECandidateInit
	if err := json.Unmarshal(payload, &candidate); err != nil {
		return err
	}
	return r.pc.AddICECandidate(candidate)
}

// Close shuts down the peer connection.
func (r *Renderer) Close() {
	if r.pc != nil {
		r.pc.Close()
	}
}
