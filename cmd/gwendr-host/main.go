package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gmalmquist/gwendr/internal/config"
	"github.com/gmalmquist/gwendr/internal/encoder"
	"github.com/gmalmquist/gwendr/internal/input"
	"github.com/gmalmquist/gwendr/internal/peer"
	"github.com/gmalmquist/gwendr/internal/scene"
	"github.com/gmalmquist/gwendr/internal/scenefile"
	"github.com/gmalmquist/gwendr/internal/signaling"
	"github.com/gmalmquist/gwendr/internal/transport"
	"github.com/gmalmquist/gwendr/internal/viewport"
)

func main() {
	cfg := config.ParseRendererFlags()

	log.Printf("gwendr renderer starting")
	log.Printf("  Renderer ID: %s", cfg.RendererID)
	log.Printf("  Signaling:   %s", cfg.SignalingURL)
	log.Printf("  Resolution:  %dx%d", cfg.Width, cfg.Height)
	log.Printf("  FPS:         %d", cfg.FPS)
	log.Printf("  Quality:     %d", cfg.Quality)

	s := loadScene(cfg.ScenePath)

	// The one program handle; only the render loop touches it.
	program := viewport.New(s, cfg.Width, cfg.Height)
	dispatcher := input.NewDispatcher()
	enc := encoder.NewJPEG(cfg.Quality)

	// The transport in use, swapped when a new viewer connects.
	var (
		mu          sync.Mutex
		currentSend *transport.DataChannelTransport
		rendPeer    *peer.Renderer
	)

	var sig *signaling.Client
	sig = signaling.NewClient(cfg.SignalingURL, cfg.RendererID, signaling.ClientTypeRenderer, signaling.Handler{
		OnRegistered: func() {
			log.Println("Registered with signaling server")
		},
		OnOffer: func(from string, payload json.RawMessage) {
			log.Printf("Received offer from %s", from)
			mu.Lock()
			defer mu.Unlock()
			if rendPeer != nil {
				rendPeer.Close()
			}
			var err error
			rendPeer, err = peer.NewRenderer(sig)
			if err != nil {
				log.Printf("create renderer peer: %v", err)
				return
			}

			rendPeer.Transport().OnInput(func(data []byte) {
				if err := dispatcher.Enqueue(data); err != nil {
					log.Printf("input event: %v", err)
				}
			})

			if err := rendPeer.HandleOffer(from, payload); err != nil {
				log.Printf("handle offer: %v", err)
				return
			}
			currentSend = rendPeer.Transport()
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			mu.Lock()
			defer mu.Unlock()
			if rendPeer != nil {
				if err := rendPeer.HandleICECandidate(payload); err != nil {
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

	stop := make(chan struct{})
	go renderLoop(program, dispatcher, enc, cfg.FPS, stop, func() *transport.DataChannelTransport {
		mu.Lock()
		defer mu.Unlock()
		return currentSend
	})

	log.Printf("Renderer ready. Share this ID with viewers: %s", cfg.RendererID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	close(stop)
	mu.Lock()
	if rendPeer != nil {
		rendPeer.Close()
	}
	mu.Unlock()
}

func loadScene(path string) *scene.Scene {
	if path == "" {
		return viewport.DefaultScene()
	}
	s, err := scenefile.Load(path)
	if err != nil {
		log.Fatalf("load scene: %v", err)
	}
	return s
}

// renderLoop owns the program: it applies queued key events, advances
// the render, and streams the framebuffer, all on one goroutine.
func renderLoop(program *viewport.Viewport, dispatcher *input.Dispatcher, enc encoder.Encoder, fps int, stop <-chan struct{}, sender func() *transport.DataChannelTransport) {
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			dispatcher.Drain(program)
			if err := program.Update(); err != nil {
				log.Printf("program update: %v", err)
				return
			}

			t := sender()
			if t == nil {
				continue
			}
			data, err := enc.Encode(program.Snapshot())
			if err != nil {
				log.Printf("encode frame: %v", err)
				continue
			}
			if err := t.SendFrame(data); err != nil {
				continue
			}
		}
	}
}
