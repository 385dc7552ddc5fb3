package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexstring(t *testing.T) {
	assert.Equal(t, "#0fff08", FromIRGB(15, 255, 8).Hexstring())
	assert.Equal(t, "#ffffff", White().Hexstring())
	assert.Equal(t, "#000000", Black().Hexstring())

	for _, s := range []string{"#ffffff", "#000000", "#12ab9c"} {
		c, err := FromHexstring(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.Hexstring())
	}

	// leading '#' optional
	c, err := FromHexstring("ff88ff")
	require.NoError(t, err)
	assert.Equal(t, "#ff88ff", c.Hexstring())
}

func TestHexstringErrors(t *testing.T) {
	for _, s := range []string{"", "#fff", "#gggggg", "#fffffff"} {
		_, err := FromHexstring(s)
		assert.Error(t, err, s)
	}
}

func TestClamping(t *testing.T) {
	hot := White().Scale(3)
	assert.Equal(t, "#ffffff", hot.Hexstring())

	cold := Black().Add(-1, White())
	assert.Equal(t, "#000000", cold.Hexstring())
}

func TestColorArithmetic(t *testing.T) {
	c := NewColor(0.5, 0.25, 0).Add(1, NewColor(0.25, 0.25, 0.5))
	assert.InDelta(t, 0.75, c.R, 1e-9)
	assert.InDelta(t, 0.5, c.G, 1e-9)
	assert.InDelta(t, 0.5, c.B, 1e-9)

	m := White().Multiply(NewColor(0.5, 0.25, 0))
	assert.InDelta(t, 0.5, m.R, 1e-9)
	assert.InDelta(t, 0.25, m.G, 1e-9)
	assert.InDelta(t, 0.0, m.B, 1e-9)

	half := Black().Lerp(White(), 0.5)
	assert.InDelta(t, 0.5, half.R, 1e-9)
}
