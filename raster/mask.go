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

package raster

import (
	"image"

	"seehuhn.de/go/geom/rect"
)

// ClipFor returns the clip rectangle covering the pixels of b.
func ClipFor(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// MaxInto returns an EmitFunc which merges coverage into dst, keeping the
// larger of the old and new value for every pixel.  Coverage outside the
// bounds of dst is ignored.
func MaxInto(dst *image.Alpha) EmitFunc {
	b := dst.Bounds()
	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		row := dst.Pix[dst.PixOffset(b.Min.X, y):]
		for i, c := range coverage {
			x := xMin + i
			if x < b.Min.X {
				continue
			}
			if x >= b.Max.X {
				break
			}
			v := toByte(c)
			if j := x - b.Min.X; v > row[j] {
				row[j] = v
			}
		}
	}
}

func toByte(c float32) uint8 {
	v := int(c * 256)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
