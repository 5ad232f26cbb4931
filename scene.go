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

package emboss

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/emboss/gradient"
)

// Compose joins the two bands on a transparent width×height canvas.  The
// upper band is placed at (0,0), the lower band at (subset, h) where h is
// half the height, rounded half up.
func Compose(upper, lower *image.RGBA, width, height, subset int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	half := gradient.RoundHalfUp(float64(height) / 2)

	ub := upper.Bounds()
	draw.Draw(canvas, ub.Sub(ub.Min), upper, ub.Min, draw.Over)

	lb := lower.Bounds()
	draw.Draw(canvas, lb.Sub(lb.Min).Add(image.Pt(subset, half)), lower, lb.Min, draw.Over)
	return canvas
}

// ContentBounds returns the smallest rectangle containing all pixels of img
// which, composited over bg, differ from bg.  The result is false if there
// are no such pixels.
func ContentBounds(img *image.RGBA, bg color.RGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	box := image.Rectangle{}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		x0, x1 := -1, -1
		for i := 0; i < b.Dx(); i++ {
			p := row[4*i : 4*i+4 : 4*i+4]
			if visible(p, bg) {
				if x0 < 0 {
					x0 = i
				}
				x1 = i
			}
		}
		if x0 < 0 {
			continue
		}
		r := image.Rect(b.Min.X+x0, y, b.Min.X+x1+1, y+1)
		if found {
			box = box.Union(r)
		} else {
			box = r
			found = true
		}
	}
	return box, found
}

// visible reports whether the premultiplied pixel p changes bg when
// composited over it.
func visible(p []uint8, bg color.RGBA) bool {
	k := 255 - uint32(p[3])
	over := func(s, d uint8) uint8 {
		return uint8(uint32(s) + (uint32(d)*k+127)/255)
	}
	return over(p[0], bg.R) != bg.R || over(p[1], bg.G) != bg.G || over(p[2], bg.B) != bg.B
}

// Crop copies the content of img, as determined by [ContentBounds], into a
// new image with origin (0,0).  If there is no content, ErrEmptyContent is
// returned.
func Crop(img *image.RGBA, bg color.RGBA) (*image.RGBA, error) {
	box, ok := ContentBounds(img, bg)
	if !ok {
		return nil, ErrEmptyContent
	}
	res := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(res, res.Bounds(), img, box.Min, draw.Src)
	return res, nil
}

// Flatten composites img over the opaque color bg, giving an opaque image
// with the same bounds.
func Flatten(img *image.RGBA, bg color.RGBA) *image.RGBA {
	bg.A = 255
	res := image.NewRGBA(img.Bounds())
	draw.Draw(res, res.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(res, res.Bounds(), img, img.Bounds().Min, draw.Over)
	return res
}
