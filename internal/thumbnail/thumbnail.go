// Package thumbnail synthesizes placeholder images for workflows that carry
// no server-provided thumbnail.
package thumbnail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	side     = 150
	fontSize = 16
	// Baseline of the title sits 20px below the vertical center.
	baselineOffset = 20
)

var (
	background = color.RGBA{0xD3, 0xD3, 0xD3, 0xFF} // lightgray
	ink        = color.RGBA{0x33, 0x33, 0x33, 0xFF}
)

// Generator renders deterministic 150x150 placeholder thumbnails.
type Generator struct {
	face font.Face
}

// New builds a Generator with a bold-italic sans-serif face for titles.
func New() (*Generator, error) {
	ft, err := opentype.Parse(gobolditalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build face: %w", err)
	}
	return &Generator{face: face}, nil
}

// DataURI renders a placeholder for the given title and returns it as an
// embeddable PNG data URI. Output is deterministic for equal titles. An
// empty title yields the plain background square.
func (g *Generator) DataURI(title string) string {
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	if title != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(ink),
			Face: g.face,
		}
		width := d.MeasureString(title)
		d.Dot = fixed.Point26_6{
			X: (fixed.I(side) - width) / 2,
			Y: fixed.I(side/2 + baselineOffset),
		}
		d.DrawString(title)
	}

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
