package display

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProgram struct {
	updates int
	keys    []string
	fail    error
}

func (p *fakeProgram) Update() error {
	p.updates++
	return p.fail
}

func (p *fakeProgram) HandleKeyDown(key string) {
	p.keys = append(p.keys, key)
}

func (p *fakeProgram) Framebuffer() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 4, 4))
}

func TestWindowUpdateCallsProgramOnce(t *testing.T) {
	p := &fakeProgram{}
	w := NewWindow(p, "test")

	require.NoError(t, w.Update())
	assert.Equal(t, 1, p.updates)

	require.NoError(t, w.Update())
	assert.Equal(t, 2, p.updates)
}

func TestWindowUpdatePropagatesProgramError(t *testing.T) {
	boom := errors.New("boom")
	p := &fakeProgram{fail: boom}
	w := NewWindow(p, "test")

	err := w.Update()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, p.updates)
}

func TestRunHeadlessTickLimit(t *testing.T) {
	p := &fakeProgram{}
	err := RunHeadless(context.Background(), p, HeadlessConfig{Hz: 1000, Ticks: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, p.updates)
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &fakeProgram{}
	err := RunHeadless(ctx, p, HeadlessConfig{Hz: 1000})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunHeadlessHaltsOnProgramError(t *testing.T) {
	boom := errors.New("boom")
	p := &fakeProgram{fail: boom}
	err := RunHeadless(context.Background(), p, HeadlessConfig{Hz: 1000, Ticks: 100})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, p.updates)
}

func TestKeyNames(t *testing.T) {
	cases := map[ebiten.Key]string{
		ebiten.KeyA:         "a",
		ebiten.KeyZ:         "z",
		ebiten.KeyDigit0:    "0",
		ebiten.KeyDigit9:    "9",
		ebiten.KeyF1:        "F1",
		ebiten.KeyF12:       "F12",
		ebiten.KeyArrowUp:   "ArrowUp",
		ebiten.KeyArrowDown: "ArrowDown",
		ebiten.KeySpace:     " ",
		ebiten.KeyTab:       "Tab",
		ebiten.KeyEnter:     "Enter",
		ebiten.KeyEscape:    "Escape",
		ebiten.KeyKPAdd:     "", // unmapped
	}
	for k, want := range cases {
		assert.Equal(t, want, keyName(k), "key %v", k)
	}
}

func TestAspectFitTransform(t *testing.T) {
	// wide view, square frame: pillarboxed
	scale, ox, oy := aspectFitTransform(200, 100, 50, 50)
	assert.Equal(t, 2.0, scale)
	assert.Equal(t, 50.0, ox)
	assert.Equal(t, 0.0, oy)

	// tall view, square frame: letterboxed
	scale, ox, oy = aspectFitTransform(100, 200, 50, 50)
	assert.Equal(t, 2.0, scale)
	assert.Equal(t, 0.0, ox)
	assert.Equal(t, 50.0, oy)
}
