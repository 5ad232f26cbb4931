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

// Package gradient builds piecewise-linear color gradients as dense sample
// fields and converts them to images.
//
// A [Spec] lists color stops over the interval [0,1].  [Build] turns a spec
// into a [Field] of the requested size by stacking one vertical segment for
// every pair of consecutive stops.  Segment heights are computed with
// round-half-up rounding, so that the result does not depend on the
// rounding mode of binary floating point arithmetic.
package gradient

import (
	"fmt"
	"image"
	"math"
)

// Axis selects the direction along which a gradient varies.
type Axis int

const (
	// Vertical gradients vary from the top row to the bottom row and are
	// constant within a row.
	Vertical Axis = iota

	// Horizontal gradients vary from the left column to the right column.
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Linspace returns n evenly spaced values from start to stop, both
// included.  For n = 1 the result is [start], for n <= 0 it is empty.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	res := make([]float64, n)
	if n == 1 {
		res[0] = start
		return res
	}
	step := (stop - start) / float64(n-1)
	for i := range res {
		res[i] = start + float64(i)*step
	}
	res[n-1] = stop
	return res
}

// Sample returns a width×height plane in row-major order, interpolating
// linearly from start to stop along the given axis and constant along the
// other one.  A zero dimension gives an empty plane.
func Sample(start, stop float64, width, height int, axis Axis) []float64 {
	if width <= 0 || height <= 0 {
		return nil
	}
	plane := make([]float64, width*height)
	if axis == Horizontal {
		row := Linspace(start, stop, width)
		for y := range height {
			copy(plane[y*width:], row)
		}
		return plane
	}
	col := Linspace(start, stop, height)
	for y, v := range col {
		row := plane[y*width : (y+1)*width]
		for x := range row {
			row[x] = v
		}
	}
	return plane
}

// Channel describes the gradient of one color channel.
type Channel struct {
	Start, Stop float64
	Axis        Axis
}

// Field is a dense width×height array of samples with a fixed number of
// channels per sample.  Samples are stored row by row, with the channels
// of one sample next to each other.
type Field struct {
	Width, Height int
	Channels      int
	Pix           []float64
}

// NewField samples every channel over a width×height plane and interleaves
// the results.
func NewField(width, height int, channels []Channel) *Field {
	width = max(width, 0)
	height = max(height, 0)
	n := len(channels)
	f := &Field{
		Width:    width,
		Height:   height,
		Channels: n,
		Pix:      make([]float64, width*height*n),
	}
	for c, ch := range channels {
		plane := Sample(ch.Start, ch.Stop, width, height, ch.Axis)
		for i, v := range plane {
			f.Pix[i*n+c] = v
		}
	}
	return f
}

// At returns the channel values of the sample at (x, y).  The slice
// aliases the field's storage.
func (f *Field) At(x, y int) []float64 {
	i := (y*f.Width + x) * f.Channels
	return f.Pix[i : i+f.Channels : i+f.Channels]
}

// Append stacks g below f.  Both fields must have the same width and
// number of channels, unless one of them is empty.
func (f *Field) Append(g *Field) error {
	if g.Height == 0 || g.Width == 0 {
		return nil
	}
	if f.Height == 0 || f.Width == 0 {
		f.Width, f.Channels = g.Width, g.Channels
	} else if f.Width != g.Width || f.Channels != g.Channels {
		return fmt.Errorf("cannot stack %dx%d field with %d channels below width %d with %d channels",
			g.Width, g.Height, g.Channels, f.Width, f.Channels)
	}
	f.Pix = append(f.Pix, g.Pix...)
	f.Height += g.Height
	return nil
}

// Image converts the first three channels of f to an opaque RGBA image of
// the given size.  Values are truncated to 8 bits.  The field is cropped
// if it is larger than the image; missing pixels are black.
func (f *Field) Image(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	w := min(width, f.Width)
	h := min(height, f.Height)
	nc := min(f.Channels, 3)
	for y := range h {
		row := img.Pix[y*img.Stride:]
		for x := range w {
			s := f.At(x, y)
			for c := range nc {
				row[4*x+c] = toByte(s[c])
			}
		}
	}
	return img
}

// toByte truncates toward zero and wraps modulo 256, like a conversion of
// a float array to unsigned 8-bit integers.
func toByte(v float64) uint8 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return uint8(int64(v))
}
