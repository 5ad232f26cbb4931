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

// Package raster computes anti-aliased pixel coverage for filled and
// stroked vector paths.
//
// Coverage is the fraction of a pixel's area inside the shape, from 0 to 1.
// It is delivered one scanline at a time through an [EmitFunc], so that
// callers decide how coverage is stored; [MaxInto] merges it into an
// [image.Alpha] mask.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of pixels xMin, xMin+1, ... on scanline y.
// The slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer converts paths to coverage values.  Internal buffers are kept
// between calls, so a single Rasterizer should be reused for many paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. It must be invertible.
	CTM matrix.Matrix

	// Clip restricts output to a device-space rectangle with integer
	// coordinates.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is used where two stroke segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins, relative to the stroke
	// width. Longer miters are replaced by bevels.
	MiterLimit float64

	cover  []float32 // signed coverage change per pixel; reused for output
	area   []float32 // area term per pixel
	edges  []edge
	active []int

	// device-space bounding box of edges
	hasBBox        bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64

	// stroker state
	segs          []segment
	subpathStart  []int
	subpathClosed []bool
	dots          []vec.Vec2
	outline       []vec.Vec2
	polyStart     []int
}

// NewRasterizer returns a Rasterizer which clips to the given rectangle and
// has default values for all other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Fill computes coverage of the path under the nonzero winding rule.
func (r *Rasterizer) Fill(p path.Path, emit EmitFunc) {
	r.resetEdges()
	r.walk(p, r.addEdge)
	r.scan(fillNonZero, emit)
}

// FillEvenOdd computes coverage of the path under the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p path.Path, emit EmitFunc) {
	r.resetEdges()
	r.walk(p, r.addEdge)
	r.scan(fillEvenOdd, emit)
}

// walk flattens p and calls line for every segment, including the implicit
// closing segment of closed subpaths.
func (r *Rasterizer) walk(p path.Path, line func(a, b vec.Vec2)) {
	var cur, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			cur = pts[0]
			start = cur
		case path.CmdLineTo:
			line(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			r.flattenQuad(cur, pts[0], pts[1], line)
			cur = pts[1]
		case path.CmdCubeTo:
			r.flattenCube(cur, pts[0], pts[1], pts[2], line)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				line(cur, start)
			}
			cur = start
		}
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuad approximates the quadratic Bézier curve p0, p1, p2 by line
// segments.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, line func(a, b vec.Vec2)) {
	// deviation of the curve from its chord is |p0 - 2p1 + p2|/4
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		line(prev, pt)
		prev = pt
	}
}

// flattenCube approximates the cubic Bézier curve p0, ..., p3 by line
// segments, choosing the number of segments using Wang's formula.
func (r *Rasterizer) flattenCube(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.hasBBox = false
}

// addEdge transforms the segment a-b to device space and records it.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	x0 := r.CTM[0]*a.X + r.CTM[2]*a.Y + r.CTM[4]
	y0 := r.CTM[1]*a.X + r.CTM[3]*a.Y + r.CTM[5]
	x1 := r.CTM[0]*b.X + r.CTM[2]*b.Y + r.CTM[4]
	y1 := r.CTM[1]*b.X + r.CTM[3]*b.Y + r.CTM[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return // horizontal edges do not change coverage
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if !r.hasBBox {
		r.bbXMin, r.bbXMax = min(x0, x1), max(x0, x1)
		r.bbYMin, r.bbYMax = min(y0, y1), max(y0, y1)
		r.hasBBox = true
		return
	}
	r.bbXMin = min(r.bbXMin, x0, x1)
	r.bbXMax = max(r.bbXMax, x0, x1)
	r.bbYMin = min(r.bbYMin, y0, y1)
	r.bbYMax = max(r.bbYMax, y0, y1)
}

// deviceBox returns the pixel range touched by the collected edges,
// intersected with the clip rectangle.
func (r *Rasterizer) deviceBox() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

// scan converts the collected edges to coverage, one scanline at a time,
// using an active edge list.
//
// For every pixel two quantities are accumulated: cover, the signed height
// of edge pieces inside the pixel column, and area, the same height weighted
// by the part of the pixel to the right of the edge.  Coverage is the
// running sum of cover over the pixels to the left plus the area term of the
// pixel itself.
func (r *Rasterizer) scan(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.deviceBox()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				return
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == fillNonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the part of e inside scanline y to the cover and area
// buffers, which are indexed by x - xMin.  Pieces left of the buffer are
// folded into the first pixel, pieces right of it are dropped.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return false
	}
	dir := float32(1)
	if e.y1 < e.y0 {
		dir = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	pixLo := int(math.Floor(min(xTop, xBot)))
	pixHi := int(math.Floor(max(xTop, xBot)))

	switch {
	case pixHi < xMin:
		c := dir * float32(bot-top)
		r.cover[0] += c
		r.area[0] += c
		return true
	case pixLo >= xMax:
		return false
	case pixLo == pixHi:
		r.deposit(e, top, bot, dir, pixLo, xMin, xMax)
		return true
	}

	// the edge crosses several pixel columns: split it at column boundaries
	dydx := 1 / e.dxdy
	for px := pixLo; px <= pixHi; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yb := e.y0 + dydx*(float64(px+1)-e.x0)
		sTop := max(min(ya, yb), top)
		sBot := min(max(ya, yb), bot)
		if sBot > sTop {
			r.deposit(e, sTop, sBot, dir, px, xMin, xMax)
		}
	}
	return true
}

// deposit records the piece of e between top and bot, which lies inside
// pixel column px.
func (r *Rasterizer) deposit(e *edge, top, bot float64, dir float32, px, xMin, xMax int) {
	c := dir * float32(bot-top)
	if px < xMin {
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if px >= xMax {
		return
	}
	xMid := e.x0 + e.dxdy*((top+bot)/2-e.y0)
	i := px - xMin
	r.cover[i] += c
	r.area[i] += c * float32(1-(xMid-float64(px)))
}

// integrateNonZero turns accumulated cover and area values into coverage,
// in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns accumulated cover and area values into coverage,
// in place in cover, folding winding numbers modulo 2.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		m := v - 2*float32(int(v/2))
		d := 1 - m
		if d < 0 {
			d = -d
		}
		cover[i] = 1 - d
	}
}

// trimZeros strips leading and trailing zeros.  It returns nil if all
// values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit turns joins with an interior angle below about
	// 11.5 degrees into bevels, as in PDF and PostScript.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves, cos(179.43°).
	cuspCosineThreshold = -0.9999
)
