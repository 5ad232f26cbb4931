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

package layer

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"seehuhn.de/go/emboss/glyph"
	"seehuhn.de/go/emboss/palette"
)

// Compose paints text with the layers of s into a new, initially
// transparent width×height image.  The text of a layer with offset (dx,dy)
// has its top-left corner at (leftMargin+dx, dy).
//
// Empty text, or an empty stack, gives a fully transparent image.
func Compose(text string, face *glyph.Face, width, height, leftMargin int, s Stack, p *palette.Palette) (*image.RGBA, error) {
	bounds := image.Rect(0, 0, width, height)
	buf := image.NewRGBA(bounds)
	if s.Len() == 0 {
		return buf, nil
	}
	if err := s.Check(p); err != nil {
		return nil, err
	}

	l, err := face.Layout(text)
	if err != nil {
		return nil, err
	}
	if l.Empty() {
		return buf, nil
	}

	var c compositor
	c.init(bounds)
	for i, spec := range s.specs {
		pos := image.Pt(leftMargin+spec.Offset.X, spec.Offset.Y)
		if err := c.paint(buf, l, pos, spec.Stroke, p.Texture(spec.Texture)); err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, spec, err)
		}
	}
	return buf, nil
}

// compositor holds the per-call state of Compose.  The mask is reused for
// all layers.
type compositor struct {
	masker *glyph.Masker
	mask   *image.Alpha
}

func (c *compositor) init(bounds image.Rectangle) {
	c.masker = glyph.NewMasker()
	c.mask = image.NewAlpha(bounds)
}

// paint draws the layout into the mask and composites tex through the mask
// over dst.  This equals pasting tex onto a transparent image through the
// mask and compositing that image over dst.
func (c *compositor) paint(dst *image.RGBA, l *glyph.Layout, pos image.Point, stroke int, tex *image.RGBA) error {
	if tex == nil {
		return ErrUnknownTexture
	}
	clear(c.mask.Pix)
	c.masker.Draw(c.mask, l, pos, stroke)
	draw.DrawMask(dst, dst.Bounds(), tex, image.Point{}, c.mask, image.Point{}, draw.Over)
	return nil
}
