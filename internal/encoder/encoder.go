// Package encoder turns rendered framebuffers into bytes for the wire
// or disk.
package encoder

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
)

// Encoder encodes a framebuffer into bytes.
type Encoder interface {
	Encode(img *image.RGBA) ([]byte, error)
}

// JPEG encodes frames for streaming. Lossy but small enough to push
// every tick over a data channel.
type JPEG struct {
	quality int
}

// NewJPEG creates a JPEG encoder with the given quality, clamped to
// 1..100.
func NewJPEG(quality int) *JPEG {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	return &JPEG{quality: quality}
}

func (e *JPEG) Encode(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PNG encodes lossless stills, for saving a finished render.
type PNG struct{}

func NewPNG() *PNG {
	return &PNG{}
}

func (e *PNG) Encode(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
