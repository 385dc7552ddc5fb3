package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/gmalmquist/gwendr/internal/config"
	"github.com/gmalmquist/gwendr/internal/display"
	"github.com/gmalmquist/gwendr/internal/encoder"
	"github.com/gmalmquist/gwendr/internal/scene"
	"github.com/gmalmquist/gwendr/internal/scenefile"
	"github.com/gmalmquist/gwendr/internal/viewport"
)

func main() {
	cfg := config.ParseViewerFlags()

	s := loadScene(cfg.ScenePath)

	// The one program handle for the life of the process.
	program := viewport.New(s, cfg.Width, cfg.Height)

	if cfg.Headless {
		runHeadless(cfg, program)
		return
	}

	// Ebitengine RunGame must be on the main goroutine.
	win := display.NewWindow(program, "gwendr")
	if err := win.Run(); err != nil {
		log.Fatalf("display: %v", err)
	}
}

func loadScene(path string) *scene.Scene {
	if path == "" {
		return viewport.DefaultScene()
	}
	s, err := scenefile.Load(path)
	if err != nil {
		log.Fatalf("load scene: %v", err)
	}
	log.Printf("Loaded scene from %s", path)
	return s
}

func runHeadless(cfg *config.ViewerConfig, program *viewport.Viewport) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := display.RunHeadless(ctx, program, display.HeadlessConfig{
		Hz:    cfg.Hz,
		Ticks: cfg.Ticks,
	})
	if err != nil && err != context.Canceled {
		log.Fatalf("headless run: %v", err)
	}
	log.Printf("Rendered %d full passes", program.Passes())

	if cfg.OutPath == "" {
		return
	}
	data, err := encoder.NewPNG().Encode(program.Framebuffer())
	if err != nil {
		log.Fatalf("encode png: %v", err)
	}
	if err := os.WriteFile(cfg.OutPath, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", cfg.OutPath, err)
	}
	log.Printf("Wrote %s", cfg.OutPath)
}
