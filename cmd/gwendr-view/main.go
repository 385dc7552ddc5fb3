package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/gmalmquist/gwendr/internal/config"
	"github.com/gmalmquist/gwendr/internal/decoder"
	"github.com/gmalmquist/gwendr/internal/display"
	"github.com/gmalmquist/gwendr/internal/input"
	"github.com/gmalmquist/gwendr/internal/peer"
	"github.com/gmalmquist/gwendr/internal/signaling"
)

func main() {
	cfg := config.ParseRemoteViewerFlags()

	if cfg.RendererID == "" {
		log.Fatal("Usage: gwendr-view -signaling <url> -renderer <renderer-id>")
	}

	log.Printf("gwendr viewer starting")
	log.Printf("  Viewer ID: %s", cfg.ViewerID)
	log.Printf("  Signaling: %s", cfg.SignalingURL)
	log.Printf("  Renderer:  %s", cfg.RendererID)

	dec := decoder.NewJPEG()

	var viewPeer *peer.Viewer

	// The window forwards key presses back to the renderer, one event
	// per press or repeat.
	win := display.NewRemoteWindow("gwendr viewer", func(key string) {
		if viewPeer == nil {
			return
		}
		data, err := input.Marshal(key)
		if err != nil {
			return
		}
		_ = viewPeer.Transport().SendInput(data)
	})

	var sig *signaling.Client
	sig = signaling.NewClient(cfg.SignalingURL, cfg.ViewerID, signaling.ClientTypeViewer, signaling.Handler{
		OnRegistered: func() {
			log.Println("Registered with signaling server")

			var err error
			viewPeer, err = peer.NewViewer(sig, cfg.RendererID)
			if err != nil {
				log.Printf("create viewer peer: %v", err)
				os.Exit(1)
			}

			viewPeer.Transport().OnFrame(func(data []byte) {
				img, err := dec.Decode(data)
				if err != nil {
					return
				}
				win.SetFrame(img)
			})

			if err := viewPeer.Connect(); err != nil {
				log.Printf("viewer connect: %v", err)
			}
		},
		OnAnswer: func(from string, payload json.RawMessage) {
			if viewPeer != nil {
				if err := viewPeer.HandleAnswer(payload); err != nil {
					log.Printf("handle answer: %v", err)
				}
			}
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			if viewPeer != nil {
				if err := viewPeer.HandleICECandidate(payload); err != nil {
					log.Printf("handle ICE candidate: %v", err)
				}
			}
		},
		OnError: func(msg string) {
			log.Printf("signaling error: %s", msg)
		},
	})

	if err := sig.Connect(); err != nil {
		log.Fatalf("signaling connect: %v", err)
	}
	defer sig.Close()

	// Ebitengine RunGame must be on the main goroutine.
	if err := win.Run(); err != nil {
		log.Fatalf("display: %v", err)
	}

	if viewPeer != nil {
		viewPeer.Close()
	}
}
