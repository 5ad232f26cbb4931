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

package glyph

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/emboss/raster"
)

// Masker draws layouts into coverage masks.  It keeps the buffers of its
// rasterizer between calls and is not safe for concurrent use.
type Masker struct {
	r *raster.Rasterizer
}

// NewMasker returns a new Masker.
func NewMasker() *Masker {
	r := raster.NewRasterizer(raster.ClipFor(image.Rectangle{}))
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	return &Masker{r: r}
}

// Draw merges the coverage of l, with its origin at pos, into dst.
//
// If stroke is positive, the outline is widened by stroke pixels on every
// side, with rounded corners.  The result is the union of the filled glyphs
// and the stroke.
func (m *Masker) Draw(dst *image.Alpha, l *Layout, pos image.Point, stroke int) {
	if l.Empty() {
		return
	}
	r := m.r
	r.Clip = raster.ClipFor(dst.Bounds())
	r.CTM = matrix.Identity.Translate(float64(pos.X), float64(pos.Y))
	emit := raster.MaxInto(dst)

	r.Fill(l.Outline.Iter(), emit)
	if stroke > 0 {
		r.Width = 2 * float64(stroke)
		r.Stroke(l.Outline.Iter(), emit)
	}
}

// RenderText draws text into a new mask with the given bounds.  It is a
// shortcut for laying out the text and drawing it with a fresh Masker.
func RenderText(text string, face *Face, bounds image.Rectangle, pos image.Point, stroke int) (*image.Alpha, error) {
	l, err := face.Layout(text)
	if err != nil {
		return nil, err
	}
	dst := image.NewAlpha(bounds)
	NewMasker().Draw(dst, l, pos, stroke)
	return dst, nil
}
