// Package swatch renders color previews for replies.
package swatch

import (
	"bytes"
	"image"
	imgcolor "image/color"
	"image/draw"
	"image/png"

	"github.com/pkg/errors"
)

// Blurple is Discord's brand color, used where no color was picked.
const Blurple = 0x5865F2

// Filename is the attachment name used for swatches.
const Filename = "swatch.png"

// AttachmentURL references the swatch attachment from inside an embed.
const AttachmentURL = "attachment://" + Filename

// DefaultSize is the edge length of a swatch in pixels.
const DefaultSize = 64

// square returns a size×size square filled with c.
func square(c imgcolor.Color, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// PNG encodes a swatch of c.
func PNG(c imgcolor.Color, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid swatch size %d", size)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, square(c, size)); err != nil {
		return nil, errors.Wrap(err, "failed to encode swatch")
	}

	return buf.Bytes(), nil
}
