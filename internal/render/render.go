// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

// Package render rasterizes a dump of map resources and tiles to a PNG image.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sort"

	"github.com/go-json-experiment/json"

	"github.com/mapexchange/mapex/internal/mapstring"
)

// MaxPixels limits the size of a rendered image.
const MaxPixels = 1 << 28

var background = color.RGBA{R: 0x3b, G: 0x4f, B: 0x3c, A: 0xff}

var palette = map[string]color.RGBA{
	"iron-ore":    {R: 0x68, G: 0x82, B: 0x90, A: 0xff},
	"copper-ore":  {R: 0xc8, G: 0x62, B: 0x30, A: 0xff},
	"stone":       {R: 0xb0, G: 0x98, B: 0x68, A: 0xff},
	"coal":        {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"uranium-ore": {R: 0x00, G: 0xb2, B: 0x00, A: 0xff},
	"water":       {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// Entity is a named thing placed on the map surface.
type Entity struct {
	Name     string             `json:"name"`
	Type     string             `json:"type,omitempty"`
	Position mapstring.Position `json:"position"`
}

// Surface holds the entities to render. Tiles are drawn below resources.
type Surface struct {
	Resources []Entity `json:"resource"`
	Tiles     []Entity `json:"tile"`
}

// Image is a rendered surface.
type Image struct {
	*image.RGBA
	// Counts holds the number of drawn entities per name.
	Counts map[string]int
	// Unknown holds the sorted names that have no color and were skipped.
	Unknown []string
}

// ReadSurface reads a surface in JSON format from r.
func ReadSurface(r io.Reader) (Surface, error) {
	var s Surface
	if err := json.UnmarshalRead(r, &s); err != nil {
		return Surface{}, fmt.Errorf("invalid surface: %w", err)
	}
	return s, nil
}

// Color returns the color used for entities named name.
func Color(name string) (color.RGBA, bool) {
	c, ok := palette[name]
	return c, ok
}

type bounds struct{ minX, minY, maxX, maxY float64 }

func (b *bounds) add(p mapstring.Position) {
	b.minX = math.Min(b.minX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxX = math.Max(b.maxX, p.X)
	b.maxY = math.Max(b.maxY, p.Y)
}

// Render draws s with each map unit as a scale×scale block. The image covers every entity and the origin.
func Render(s Surface, scale int) (*Image, error) {
	if scale < 1 {
		return nil, fmt.Errorf("scale must be >= 1, got %d", scale)
	}
	var b bounds
	for _, e := range s.Tiles {
		b.add(e.Position)
	}
	for _, e := range s.Resources {
		b.add(e.Position)
	}
	w := math.Ceil(b.maxX-b.minX) + 1
	h := math.Ceil(b.maxY-b.minY) + 1
	if w*h*float64(scale)*float64(scale) > MaxPixels {
		return nil, fmt.Errorf("image of %.0fx%.0f at scale %d exceeds %d pixels", w, h, scale, MaxPixels)
	}
	img := &Image{
		RGBA:   image.NewRGBA(image.Rect(0, 0, int(w)*scale, int(h)*scale)),
		Counts: make(map[string]int),
	}
	draw.Draw(img.RGBA, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	unknown := make(map[string]bool)
	plot := func(e Entity) {
		c, ok := Color(e.Name)
		if !ok {
			unknown[e.Name] = true
			return
		}
		x := int(math.Floor(e.Position.X-b.minX)) * scale
		y := int(math.Floor(e.Position.Y-b.minY)) * scale
		draw.Draw(img.RGBA, image.Rect(x, y, x+scale, y+scale), image.NewUniform(c), image.Point{}, draw.Src)
		img.Counts[e.Name]++
	}
	for _, e := range s.Tiles {
		plot(e)
	}
	for _, e := range s.Resources {
		plot(e)
	}
	for name := range unknown {
		img.Unknown = append(img.Unknown, name)
	}
	sort.Strings(img.Unknown)
	return img, nil
}

// EncodePNG returns img encoded as PNG.
func (img *Image) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.RGBA); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
