// Package color resolves free-form user input into canonical role colors.
package color

import (
	"fmt"
	imgcolor "image/color"
	"strconv"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

var _ imgcolor.Color = RGB{}

// FromUint32 converts a 0xRRGGBB value. The upper byte is ignored.
func FromUint32(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Uint32 returns the color as 0xRRGGBB.
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Hex returns six uppercase, zero-padded hex digits without a leading "#".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements image/color.Color. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return imgcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

// Source describes which kind of input produced a Color.
type Source uint8

const (
	FromHex Source = iota
	FromName
	FromDescription
)

func (s Source) String() string {
	switch s {
	case FromHex:
		return "hex"
	case FromName:
		return "name"
	case FromDescription:
		return "description"
	default:
		return "Source(" + strconv.Itoa(int(s)) + ")"
	}
}

// Color is the canonical form of a resolved user input.
type Color struct {
	RGB RGB
	// Hex is always RGB.Hex().
	Hex string
	// Name is the display name: the hex code for hex input, the lowercase
	// keyword for named colors and the normalized words for descriptions.
	Name   string
	Source Source
}

func newColor(rgb RGB, name string, src Source) Color {
	hex := rgb.Hex()
	if src == FromHex {
		name = hex
	}

	return Color{
		RGB:    rgb,
		Hex:    hex,
		Name:   name,
		Source: src,
	}
}

// String formats the color as "#FF7F50" for hex input and "coral (#FF7F50)"
// otherwise.
func (c Color) String() string {
	if c.Source == FromHex {
		return "#" + c.Hex
	}
	return c.Name + " (#" + c.Hex + ")"
}

// isHexDigits returns true if s is non-empty and only has hex digits.
func isHexDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}

	return true
}

// parseHex parses 3 or 6 hex digits. Shorthand digits are doubled, so "F08"
// becomes "FF0088".
func parseHex(digits string) (RGB, bool) {
	switch len(digits) {
	case 3:
		expanded := make([]byte, 0, 6)
		for i := 0; i < 3; i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	case 6:
	default:
		return RGB{}, false
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	return FromUint32(uint32(v)), true
}
