// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapexchange/mapex/internal/mapstring"
)

const surfaceJSON = `{
  "resource": [
    {"name": "iron-ore", "type": "resource", "position": {"x": 2.5, "y": 1.5}},
    {"name": "coal", "type": "resource", "position": {"x": -1.5, "y": 0.5}},
    {"name": "crude-oil", "type": "resource", "position": {"x": 0.5, "y": 0.5}},
    {"name": "crude-oil", "type": "resource", "position": {"x": 1.5, "y": 0.5}}
  ],
  "tile": [
    {"name": "water", "position": {"x": 2, "y": 1}},
    {"name": "deepwater", "position": {"x": 0, "y": 0}}
  ]
}`

func TestReadSurface(t *testing.T) {
	s, err := ReadSurface(strings.NewReader(surfaceJSON))
	require.Nil(t, err)
	assert.Len(t, s.Resources, 4)
	assert.Len(t, s.Tiles, 2)
	assert.Equal(t, Entity{Name: "iron-ore", Type: "resource", Position: mapstring.Position{X: 2.5, Y: 1.5}}, s.Resources[0])

	_, err = ReadSurface(strings.NewReader(`{"resource": 1}`))
	assert.ErrorContains(t, err, "invalid surface")
}

func TestRender(t *testing.T) {
	s, err := ReadSurface(strings.NewReader(surfaceJSON))
	require.Nil(t, err)
	img, err := Render(s, 1)
	require.Nil(t, err)

	// x spans [-1.5, 2.5], y spans [0, 1.5]
	assert.Equal(t, 5, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
	assert.Equal(t, map[string]int{"iron-ore": 1, "coal": 1, "water": 1}, img.Counts)
	assert.Equal(t, []string{"crude-oil", "deepwater"}, img.Unknown)

	iron, _ := Color("iron-ore")
	coal, _ := Color("coal")
	assert.Equal(t, iron, img.RGBAAt(4, 1))
	assert.Equal(t, coal, img.RGBAAt(0, 0))
	assert.Equal(t, background, img.RGBAAt(1, 0))
	water, _ := Color("water")
	assert.Equal(t, water, img.RGBAAt(3, 1))
}

func TestRenderResourceAboveTile(t *testing.T) {
	s := Surface{
		Resources: []Entity{{Name: "stone", Position: mapstring.Position{X: 0, Y: 0}}},
		Tiles:     []Entity{{Name: "water", Position: mapstring.Position{X: 0, Y: 0}}},
	}
	img, err := Render(s, 1)
	require.Nil(t, err)
	stone, _ := Color("stone")
	assert.Equal(t, stone, img.RGBAAt(0, 0))
}

func TestRenderScale(t *testing.T) {
	s := Surface{Resources: []Entity{{Name: "uranium-ore", Position: mapstring.Position{X: 1, Y: 1}}}}
	img, err := Render(s, 3)
	require.Nil(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
	uranium, _ := Color("uranium-ore")
	for x := 3; x < 6; x++ {
		for y := 3; y < 6; y++ {
			assert.Equal(t, uranium, img.RGBAAt(x, y))
		}
	}
	assert.Equal(t, background, img.RGBAAt(2, 2))

	_, err = Render(s, 0)
	assert.ErrorContains(t, err, "scale must be >= 1")

	far := Surface{Resources: []Entity{{Name: "coal", Position: mapstring.Position{X: 1e6, Y: 1e6}}}}
	_, err = Render(far, 1)
	assert.ErrorContains(t, err, "exceeds")
}

func TestEmptySurface(t *testing.T) {
	img, err := Render(Surface{}, 1)
	require.Nil(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
	assert.Empty(t, img.Counts)
	assert.Empty(t, img.Unknown)
}

func TestEncodePNG(t *testing.T) {
	s := Surface{Resources: []Entity{{Name: "copper-ore", Position: mapstring.Position{X: 1, Y: 0}}}}
	img, err := Render(s, 2)
	require.Nil(t, err)
	data, err := img.EncodePNG()
	require.Nil(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.Nil(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())
	copper, _ := Color("copper-ore")
	assert.Equal(t, copper, color.RGBAModel.Convert(decoded.At(2, 0)))
}
