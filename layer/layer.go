// seehuhn.de/go/emboss - layered gradient text rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package layer paints a line of text as a stack of textured layers.
//
// Every layer draws the text with its own offset and stroke width into a
// coverage mask, and paints a texture from a palette through the mask.
// Layers are painted bottom to top with source-over compositing, so later
// layers cover earlier ones where their masks overlap.
package layer

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"seehuhn.de/go/emboss/palette"
)

var (
	// ErrInvalidLayer is returned for layers with a negative stroke width
	// or without a texture.
	ErrInvalidLayer = errors.New("invalid layer")

	// ErrUnknownTexture is returned when a layer refers to a texture which
	// is not in the palette.
	ErrUnknownTexture = errors.New("unknown texture")
)

// Spec describes one layer.
type Spec struct {
	// Offset moves the text relative to the position of the band.
	Offset image.Point

	// Stroke is the number of pixels by which the glyph outlines are
	// widened.  Zero draws the plain glyphs.
	Stroke int

	// Texture is the palette key of the fill.
	Texture string
}

func (s Spec) String() string {
	return fmt.Sprintf("%s+%d@%v", s.Texture, s.Stroke, s.Offset)
}

// Stack is a validated sequence of layers, from bottom to top.
// The zero value is an empty stack.
type Stack struct {
	specs []Spec
}

// NewStack validates the given layers and returns them as a stack.
func NewStack(specs ...Spec) (Stack, error) {
	for i, s := range specs {
		if s.Stroke < 0 {
			return Stack{}, fmt.Errorf("%w: layer %d has stroke %d", ErrInvalidLayer, i, s.Stroke)
		}
		if s.Texture == "" {
			return Stack{}, fmt.Errorf("%w: layer %d has no texture", ErrInvalidLayer, i)
		}
	}
	return Stack{specs: slices.Clone(specs)}, nil
}

func mustStack(specs ...Spec) Stack {
	s, err := NewStack(specs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of layers.
func (s Stack) Len() int {
	return len(s.specs)
}

// Specs returns a copy of the layers, from bottom to top.
func (s Stack) Specs() []Spec {
	return slices.Clone(s.specs)
}

// Check verifies that every texture used by s is in p.
func (s Stack) Check(p *palette.Palette) error {
	for i, spec := range s.specs {
		if !p.Has(spec.Texture) {
			return fmt.Errorf("layer %d: %w %q", i, ErrUnknownTexture, spec.Texture)
		}
	}
	return nil
}

// MaxExtent returns the largest distance by which a layer can reach beyond
// the plain glyphs, taking offsets and strokes into account.
func (s Stack) MaxExtent() int {
	ext := 0
	for _, spec := range s.specs {
		dx := max(spec.Offset.X, -spec.Offset.X)
		dy := max(spec.Offset.Y, -spec.Offset.Y)
		ext = max(ext, spec.Stroke+max(dx, dy))
	}
	return ext
}

// UpperStack returns the layers of the default upper band: a dark drop
// shadow with a silver rim, a black and gold bevel, a white inner line and
// a red face.
func UpperStack() Stack {
	return mustStack(
		Spec{Offset: image.Pt(4, 4), Stroke: 22, Texture: "baseStrokeBlack"},
		Spec{Offset: image.Pt(4, 4), Stroke: 20, Texture: "downerSilver"},
		Spec{Stroke: 16, Texture: "baseStrokeBlack"},
		Spec{Stroke: 10, Texture: "gold"},
		Spec{Stroke: 6, Texture: "baseStrokeBlack"},
		Spec{Stroke: 6, Texture: "baseStrokeWhite"},
		Spec{Stroke: 4, Texture: "strokeRed"},
		Spec{Stroke: 0, Texture: "red"},
	)
}

// LowerStack returns the layers of the default lower band, ending in a
// silver face raised by three pixels.
func LowerStack() Stack {
	return mustStack(
		Spec{Offset: image.Pt(5, 2), Stroke: 22, Texture: "baseStrokeBlack"},
		Spec{Offset: image.Pt(5, 2), Stroke: 19, Texture: "downerSilver"},
		Spec{Stroke: 17, Texture: "strokeBlack"},
		Spec{Stroke: 8, Texture: "strokeWhite"},
		Spec{Stroke: 7, Texture: "strokeNavy"},
		Spec{Offset: image.Pt(0, -3), Stroke: 0, Texture: "silver2"},
	)
}
