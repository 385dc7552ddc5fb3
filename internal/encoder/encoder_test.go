package encoder

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmalmquist/gwendr/internal/decoder"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(x * 255 / w)
			img.Pix[i+1] = uint8(y * 255 / h)
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

func TestJPEGQualityClamped(t *testing.T) {
	img := gradient(32, 32)
	for _, q := range []int{-10, 0, 50, 100, 1000} {
		data, err := NewJPEG(q).Encode(img)
		require.NoError(t, err, "quality %d", q)
		assert.NotEmpty(t, data)
	}
}

func TestJPEGSurvivesDecode(t *testing.T) {
	img := gradient(64, 48)
	data, err := NewJPEG(90).Encode(img)
	require.NoError(t, err)

	out, err := decoder.NewJPEG().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), out.Bounds())

	// lossy, but the gradient's corners should still be recognizable
	assert.Less(t, int(out.RGBAAt(1, 1).R), 64)
	assert.Greater(t, int(out.RGBAAt(62, 1).R), 128)
}

func TestPNGIsLossless(t *testing.T) {
	img := gradient(16, 16)
	data, err := NewPNG().Encode(img)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// png magic
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := decoder.NewJPEG().Decode([]byte("definitely not a jpeg"))
	assert.Error(t, err)
}
