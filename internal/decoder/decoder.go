// Package decoder turns received frame bytes back into framebuffers.
package decoder

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"
)

// Decoder decodes frame bytes into an image.
type Decoder interface {
	Decode(data []byte) (*image.RGBA, error)
}

// JPEG decodes streamed frames into *image.RGBA.
type JPEG struct{}

func NewJPEG() *JPEG {
	return &JPEG{}
}

func (d *JPEG) Decode(data []byte) (*image.RGBA, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba, nil
}
