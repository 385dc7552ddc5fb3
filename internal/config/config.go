// Package config parses the per-binary command line flags.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
)

// ViewerConfig holds configuration for the local viewer binary.
type ViewerConfig struct {
	ScenePath string
	Width     int
	Height    int
	Headless  bool
	Hz        int
	Ticks     uint64
	OutPath   string
}

// ParseViewerFlags parses flags for the local viewer.
func ParseViewerFlags() *ViewerConfig {
	cfg := &ViewerConfig{}
	flag.StringVar(&cfg.ScenePath, "scene", "", "Scene file (HCL); empty for the built-in demo scene")
	flag.IntVar(&cfg.Width, "width", 640, "Framebuffer width in pixels")
	flag.IntVar(&cfg.Height, "height", 480, "Framebuffer height in pixels")
	flag.BoolVar(&cfg.Headless, "headless", false, "Render without a window")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted)")
	flag.StringVar(&cfg.OutPath, "out", "", "Write the framebuffer as PNG on headless exit")
	flag.Parse()
	return cfg
}

// RendererConfig holds configuration for the streaming renderer binary.
type RendererConfig struct {
	SignalingURL string
	RendererID   string
	ScenePath    string
	Width        int
	Height       int
	FPS          int
	Quality      int
}

// ParseRendererFlags parses flags for the streaming renderer.
func ParseRendererFlags() *RendererConfig {
	cfg := &RendererConfig{}
	flag.StringVar(&cfg.SignalingURL, "signaling", "ws://localhost:8080", "Signaling server WebSocket URL")
	flag.StringVar(&cfg.RendererID, "id", "", "Renderer ID (auto-generated if empty)")
	flag.StringVar(&cfg.ScenePath, "scene", "", "Scene file (HCL); empty for the built-in demo scene")
	flag.IntVar(&cfg.Width, "width", 640, "Framebuffer width in pixels")
	flag.IntVar(&cfg.Height, "height", 480, "Framebuffer height in pixels")
	flag.IntVar(&cfg.FPS, "fps", 30, "Frames streamed per second")
	flag.IntVar(&cfg.Quality, "quality", 70, "JPEG quality (1-100)")
	flag.Parse()

	if cfg.RendererID == "" {
		cfg.RendererID = fmt.Sprintf("renderer-%s", randomID())
	}
	return cfg
}

// RemoteViewerConfig holds configuration for the remote viewer binary.
type RemoteViewerConfig struct {
	SignalingURL string
	ViewerID     string
	RendererID   string
}

// ParseRemoteViewerFlags parses flags for the remote viewer.
func ParseRemoteViewerFlags() *RemoteViewerConfig {
	cfg := &RemoteViewerConfig{}
	flag.StringVar(&cfg.SignalingURL, "signaling", "ws://localhost:8080", "Signaling server WebSocket URL")
	flag.StringVar(&cfg.ViewerID, "id", "", "Viewer ID (auto-generated if empty)")
	flag.StringVar(&cfg.RendererID, "renderer", "", "Renderer ID to connect to (required)")
	flag.Parse()

	if cfg.ViewerID == "" {
		cfg.ViewerID = fmt.Sprintf("viewer-%s", randomID())
	}
	return cfg
}

func randomID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
