package vortex

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the fixed set of particle colors, indexed by Particle.Color.
type Palette []color.NRGBA

// ParsePalette converts "#RRGGBB" strings to opaque colors.
func ParsePalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// WithAlpha returns the palette entry i with alpha in [0, 1] applied.
func (p Palette) WithAlpha(i int, alpha float64) color.NRGBA {
	c := p[i]
	c.A = uint8(clamp01(alpha)*255 + 0.5)
	return c
}
