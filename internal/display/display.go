// Package display is the host glue around a program: it drives one
// program update per display tick and forwards key presses, either in a
// window or on a headless ticker.
package display

import (
	"context"
	"fmt"
	"image"
	"time"
)

// Program is the surface the display drives. One instance is created
// at startup and every call goes through that handle, always from the
// display's goroutine.
type Program interface {
	// Update advances the program by one frame. An error halts the
	// loop.
	Update() error
	// HandleKeyDown receives one key press, DOM KeyboardEvent.key
	// style. Host key repeat arrives as separate calls.
	HandleKeyDown(key string)
	// Framebuffer is the image the program draws into.
	Framebuffer() *image.RGBA
}

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64 // stop after N ticks; 0 = run until canceled
}

// RunHeadless drives the program on a plain ticker: the same loop as
// the window, with the exit conditions explicit.
func RunHeadless(ctx context.Context, p Program, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := p.Update(); err != nil {
				return fmt.Errorf("program update at tick %d: %w", tick, err)
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
