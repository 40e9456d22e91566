package swatch

import (
	"bytes"
	imgcolor "image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	coral := imgcolor.RGBA{R: 0xFF, G: 0x7F, B: 0x50, A: 0xFF}

	b, err := PNG(coral, 8)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)

	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	for _, p := range [][2]int{{0, 0}, {7, 7}, {3, 5}} {
		r, g, b, a := img.At(p[0], p[1]).RGBA()
		assert.Equal(t, [4]uint32{0xFFFF, 0x7F7F, 0x5050, 0xFFFF}, [4]uint32{r, g, b, a})
	}
}

func TestPNGInvalidSize(t *testing.T) {
	_, err := PNG(imgcolor.Black, 0)
	assert.Error(t, err)
}
