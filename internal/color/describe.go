package color

import (
	"math"
	"sort"
	"strings"
)

type hsl struct {
	h float64 // degrees
	s float64 // percent
	l float64 // percent
}

// baseColors are the nouns of a description.
var baseColors = map[string]hsl{
	"red":     {0, 100, 50},
	"orange":  {30, 100, 50},
	"yellow":  {60, 100, 50},
	"lime":    {90, 100, 50},
	"green":   {120, 100, 40},
	"teal":    {180, 100, 35},
	"cyan":    {180, 100, 50},
	"blue":    {210, 100, 50},
	"indigo":  {240, 100, 40},
	"purple":  {270, 100, 50},
	"violet":  {270, 100, 60},
	"magenta": {300, 100, 50},
	"pink":    {330, 100, 70},
	"brown":   {30, 60, 30},
	"gray":    {0, 0, 50},
	"grey":    {0, 0, 50},
	"white":   {0, 0, 100},
	"black":   {0, 0, 0},
}

type modifier struct {
	hueAdd        float64
	saturationMul float64
	lightnessAdd  float64
}

// modifiers are the adjectives of a description.
var modifiers = map[string]modifier{
	"light":    {0, 1, 20},
	"pale":     {0, 0.6, 25},
	"pastel":   {0, 0.5, 30},
	"dark":     {0, 1, -25},
	"deep":     {0, 1.1, -20},
	"bright":   {0, 1.2, 5},
	"vivid":    {0, 1.3, 0},
	"muted":    {0, 0.5, 0},
	"dull":     {0, 0.4, 0},
	"soft":     {0, 0.6, 10},
	"neon":     {0, 1.4, 10},
	"electric": {0, 1.3, 5},
	"dusty":    {0, 0.4, -5},
	"warm":     {15, 1, 0},
	"cool":     {-15, 1, 0},
}

// BaseColors returns the sorted base color words of the description grammar.
func BaseColors() []string { return sortedKeys(baseColors) }

// Modifiers returns the sorted modifier words of the description grammar.
func Modifiers() []string { return sortedKeys(modifiers) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe parses a description such as "dark red" or "pastel pink": exactly
// one base color and any number of modifiers, in any order. Unknown words fail
// the whole description.
func Describe(input string) (Color, bool) {
	words := strings.Fields(strings.ToLower(input))
	if len(words) == 0 {
		return Color{}, false
	}

	var base *hsl
	var mods []modifier

	for _, word := range words {
		if b, ok := baseColors[word]; ok {
			if base != nil {
				return Color{}, false
			}
			base = &b
			continue
		}

		m, ok := modifiers[word]
		if !ok {
			return Color{}, false
		}
		mods = append(mods, m)
	}

	if base == nil {
		return Color{}, false
	}

	c := *base
	for _, m := range mods {
		c.h += m.hueAdd
		c.s *= m.saturationMul
		c.l += m.lightnessAdd
	}

	return newColor(c.rgb(), strings.Join(words, " "), FromDescription), true
}

// rgb converts the HSL triple, wrapping the hue and clamping the rest.
// Channels are truncated, not rounded.
func (c hsl) rgb() RGB {
	h := math.Mod(c.h, 360)
	if h < 0 {
		h += 360
	}
	s := clamp(c.s, 0, 100) / 100
	l := clamp(c.l, 0, 100) / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
	}
}

func channel(v float64) uint8 {
	return uint8(clamp(v*255, 0, 255))
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
