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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

// Triangle builds a closed triangle.
func Triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// Rectangle builds a closed, axis-aligned rectangle, traversed in the order
// (x1,y1), (x2,y1), (x2,y2), (x1,y2).
func Rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// Ring builds a square with a square hole, the way the outlines of a
// glyph like "o" are drawn: the hole runs in the opposite direction.
func Ring(cx, cy, outer, inner float64) *path.Data {
	p := &path.Data{}
	p.MoveTo(pt(cx-outer, cy-outer)).
		LineTo(pt(cx+outer, cy-outer)).
		LineTo(pt(cx+outer, cy+outer)).
		LineTo(pt(cx-outer, cy+outer)).
		Close()
	p.MoveTo(pt(cx-inner, cy-inner)).
		LineTo(pt(cx-inner, cy+inner)).
		LineTo(pt(cx+inner, cy+inner)).
		LineTo(pt(cx+inner, cy-inner)).
		Close()
	return p
}

// Circle approximates a circle by four cubic Bézier curves.
func Circle(cx, cy, r float64) *path.Data {
	return addCircle(&path.Data{}, cx, cy, r, false)
}

// Annulus builds the outline of the letter "O": two circles running in
// opposite directions.
func Annulus(cx, cy, outer, inner float64) *path.Data {
	p := addCircle(&path.Data{}, cx, cy, outer, false)
	return addCircle(p, cx, cy, inner, true)
}

func addCircle(p *path.Data, cx, cy, r float64, reverse bool) *path.Data {
	k := r * 4 * (math.Sqrt2 - 1) / 3
	s := 1.0
	if reverse {
		s = -1
	}
	return p.MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+s*k), pt(cx+k, cy+s*r), pt(cx, cy+s*r)).
		CubeTo(pt(cx-k, cy+s*r), pt(cx-r, cy+s*k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-s*k), pt(cx-k, cy-s*r), pt(cx, cy-s*r)).
		CubeTo(pt(cx+k, cy-s*r), pt(cx+r, cy-s*k), pt(cx+r, cy)).
		Close()
}

// Bowl builds a glyph-like closed contour made of quadratic curves, with a
// counter-directed hole.
func Bowl(cx, cy, rx, ry, w float64) *path.Data {
	p := &path.Data{}
	oval := func(rx, ry float64, reverse bool) {
		s := 1.0
		if reverse {
			s = -1
		}
		p.MoveTo(pt(cx+rx, cy)).
			QuadTo(pt(cx+rx, cy+s*ry), pt(cx, cy+s*ry)).
			QuadTo(pt(cx-rx, cy+s*ry), pt(cx-rx, cy)).
			QuadTo(pt(cx-rx, cy-s*ry), pt(cx, cy-s*ry)).
			QuadTo(pt(cx+rx, cy-s*ry), pt(cx+rx, cy)).
			Close()
	}
	oval(rx, ry, false)
	oval(rx-w, ry-w, true)
	return p
}

// Polyline builds an open path through the given points, given as
// alternating x and y coordinates.
func Polyline(coords ...float64) *path.Data {
	p := &path.Data{}
	p.MoveTo(pt(coords[0], coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		p.LineTo(pt(coords[i], coords[i+1]))
	}
	return p
}

// Dot builds a subpath of zero length.
func Dot(x, y float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x, y)).LineTo(pt(x, y))
}
