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
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened piece of a subpath, in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // T rotated by +90°
}

// Stroke computes coverage of the outline obtained by stroking p with the
// current Width, Cap, Join and MiterLimit.
//
// Closed subpaths are stroked in a common orientation, so that where the
// strokes of different contours overlap (for example the outer and inner
// contour of a glyph "o"), the coverage adds up instead of cancelling.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.flattenSubpaths(p)
	r.outline = r.outline[:0]
	r.polyStart = r.polyStart[:0]

	d := r.Width / 2
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.beginPoly()
			r.arc(pt, d, vec.Vec2{X: 1}, -2*math.Pi, true)
			r.endPoly()
		}
	}

	for i := range r.subpathStart {
		segs := r.subpathSegs(i)
		r.beginPoly()
		if r.subpathClosed[i] {
			if signedArea(segs) < 0 {
				reverseSegments(segs)
			}
			r.strokeClosed(segs, d)
		} else {
			r.strokeOpen(segs, d)
		}
		r.endPoly()
	}

	r.resetEdges()
	for i := range r.polyStart {
		poly := r.poly(i)
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(fillNonZero, emit)
}

func (r *Rasterizer) beginPoly() {
	r.polyStart = append(r.polyStart, len(r.outline))
}

// endPoly discards the current polygon if it has fewer than three vertices.
func (r *Rasterizer) endPoly() {
	last := len(r.polyStart) - 1
	if start := r.polyStart[last]; len(r.outline)-start < 3 {
		r.outline = r.outline[:start]
		r.polyStart = r.polyStart[:last]
	}
}

func (r *Rasterizer) poly(i int) []vec.Vec2 {
	end := len(r.outline)
	if i+1 < len(r.polyStart) {
		end = r.polyStart[i+1]
	}
	return r.outline[r.polyStart[i]:end]
}

func (r *Rasterizer) subpathSegs(i int) []segment {
	end := len(r.segs)
	if i+1 < len(r.subpathStart) {
		end = r.subpathStart[i+1]
	}
	return r.segs[r.subpathStart[i]:end]
}

// flattenSubpaths splits p into subpaths of line segments.  Subpaths without
// any segment of positive length are recorded in r.dots.
func (r *Rasterizer) flattenSubpaths(p path.Path) {
	r.segs = r.segs[:0]
	r.subpathStart = r.subpathStart[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0
	open := false
	drawn := false

	finish := func(closed bool) {
		if len(r.segs) == first {
			r.dots = append(r.dots, start)
		} else {
			r.subpathStart = append(r.subpathStart, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		}
	}

	for cmd, pts := range p {
		if cmd != path.CmdMoveTo && !open {
			continue
		}
		switch cmd {
		case path.CmdMoveTo:
			if open && (drawn || len(r.segs) > first) {
				finish(false)
			}
			cur = pts[0]
			start = cur
			first = len(r.segs)
			open = true
			drawn = false
		case path.CmdLineTo:
			drawn = true
			r.addSegment(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			drawn = true
			r.flattenQuad(cur, pts[0], pts[1], r.addSegment)
			cur = pts[1]
		case path.CmdCubeTo:
			drawn = true
			r.flattenCube(cur, pts[0], pts[1], pts[2], r.addSegment)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				r.addSegment(cur, start)
			}
			finish(true)
			cur = start
			first = len(r.segs)
			open = false
			drawn = false
		}
	}
	if open && (drawn || len(r.segs) > first) {
		finish(false)
	}
}

func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// signedArea returns the signed area enclosed by a closed subpath.
func signedArea(segs []segment) float64 {
	var a float64
	for _, s := range segs {
		a += s.A.X*s.B.Y - s.B.X*s.A.Y
	}
	return a / 2
}

// reverseSegments reverses the direction of a subpath in place.
func reverseSegments(segs []segment) {
	slices.Reverse(segs)
	for i := range segs {
		s := &segs[i]
		s.A, s.B = s.B, s.A
		s.T = s.T.Mul(-1)
		s.N = s.N.Mul(-1)
	}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// strokeClosed appends the stroke outline of a closed subpath as a single
// polygon: the +N offset curve forwards, then the -N offset curve
// backwards.  Corner geometry is added on the outer side of each turn.
func (r *Rasterizer) strokeClosed(segs []segment, d float64) {
	n := len(segs)
	first := &segs[0]

	r.outline = append(r.outline, first.A.Add(first.N.Mul(d)))
	for i := range n {
		seg, next := &segs[i], &segs[(i+1)%n]
		s := cross(seg.T, next.T)
		switch {
		case math.Abs(s) < collinearityThreshold:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
		case s > 0:
			r.innerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			r.join(seg.B, seg.T, next.T, d, true)
			r.outline = append(r.outline, next.A.Add(next.N.Mul(d)))
		}
	}

	// corners in backward order: the closing corner at segs[0].A first
	for k := range n {
		i := (n - k) % n
		seg, prev := &segs[i], &segs[(i+n-1)%n]
		s := cross(prev.T, seg.T)
		switch {
		case math.Abs(s) < collinearityThreshold:
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)), prev.B.Sub(prev.N.Mul(d)))
		case s > 0:
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			r.join(seg.A, prev.T, seg.T, d, false)
			r.outline = append(r.outline, prev.B.Sub(prev.N.Mul(d)))
		default:
			r.innerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
	r.outline = append(r.outline, first.A.Sub(first.N.Mul(d)))
}

// strokeOpen appends the stroke outline of an open subpath, with caps at
// both ends.
func (r *Rasterizer) strokeOpen(segs []segment, d float64) {
	n := len(segs)
	first, last := &segs[0], &segs[n-1]

	r.cap(first.A, first.T.Mul(-1), d)

	skip := false
	for i := range n {
		seg := &segs[i]
		if !skip {
			r.outline = append(r.outline, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i == n-1 {
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		s := cross(seg.T, next.T)
		switch {
		case math.Abs(s) < collinearityThreshold:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
		case s > 0:
			skip = r.innerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			r.join(seg.B, seg.T, next.T, d, true)
		}
	}

	r.cap(last.B, last.T, d)

	skip = false
	for i := n - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			r.outline = append(r.outline, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i == 0 {
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		s := cross(prev.T, seg.T)
		switch {
		case math.Abs(s) < collinearityThreshold:
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
		case s > 0:
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			r.join(seg.A, prev.T, seg.T, d, false)
		default:
			skip = r.innerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// cap appends the line cap at P, where T points away from the line.
func (r *Rasterizer) cap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.arc(P, d, N, -math.Pi, true)
	}
}

// innerCorner appends the intersection of the two offset lines on the
// inner side of a corner, or both offset points if the lines are nearly
// parallel.  It reports whether the intersection was used.
func (r *Rasterizer) innerCorner(P, T1, T2, N1, N2 vec.Vec2, d float64, plus bool) bool {
	if pt, ok := innerPoint(P, T1, T2, d, plus); ok {
		r.outline = append(r.outline, pt)
		return true
	}
	if plus {
		r.outline = append(r.outline, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		r.outline = append(r.outline, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

func innerPoint(P, T1, T2 vec.Vec2, d float64, plus bool) (vec.Vec2, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	cosHalf := math.Sqrt((1 + cosTheta) / 2)
	if cosHalf < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X} // N1 + N2
	if !plus {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * cosHalf))), true
}

// join appends the join geometry at P, where the tangent turns from T1 to
// T2, on the side selected by plus.
func (r *Rasterizer) join(P, T1, T2 vec.Vec2, d float64, plus bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}
	if cosTheta < cuspCosineThreshold {
		r.cap(P, T1, d)
		r.cap(P, T2.Mul(-1), d)
		return
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

	switch r.Join {
	case graphics.LineJoinMiter:
		// the miter length relative to the line width is 1/cos(θ/2)
		const eps = 1e-10
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+eps {
			bis := N1.Add(N2)
			if !plus {
				bis = bis.Mul(-1)
			}
			if l := bis.Length(); l > zeroLengthThreshold {
				r.outline = append(r.outline, P.Add(bis.Mul(d/(l*cosHalf))))
			}
		}

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if sinTheta < 0 {
			angle = -angle
		}
		if plus {
			r.arc(P, d, N1, angle, false)
		} else {
			// backwards: from -N2 to -N1
			r.arc(P, d, N2.Mul(-1), -angle, false)
		}
	}
}

// arc appends points on the circle around center, starting in direction
// startDir and sweeping by the given angle (positive is counter-clockwise).
func (r *Rasterizer) arc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	rot := func(a float64) vec.Vec2 {
		c, s := math.Cos(a), math.Sin(a)
		return vec.Vec2{
			X: startDir.X*c - startDir.Y*s,
			Y: startDir.X*s + startDir.Y*c,
		}
	}

	devRadius := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length())
	if devRadius < r.Flatness {
		if includeStart {
			r.outline = append(r.outline, center.Add(startDir.Mul(radius)))
		}
		r.outline = append(r.outline, center.Add(rot(sweep).Mul(radius)))
		return
	}

	// a chord spanning angle θ deviates from the circle by R(1-cos(θ/2))
	step := 2 * math.Acos(1-r.Flatness/devRadius)
	if step <= 0 || math.IsNaN(step) {
		step = math.Pi / 4
	}
	n := max(int(math.Ceil(math.Abs(sweep)/step)), 1)

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		r.outline = append(r.outline, center.Add(rot(sweep*float64(i)/float64(n)).Mul(radius)))
	}
}
