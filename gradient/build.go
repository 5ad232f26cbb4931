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

package gradient

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSpec is returned when a gradient spec violates the ordering or
// range rules for its stops.
var ErrInvalidSpec = errors.New("invalid gradient spec")

// RGB is a color with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Stop anchors a color at a position between 0 (top) and 1 (bottom).
type Stop struct {
	Pos   float64
	Color RGB
}

// Spec is a list of color stops, ordered by position.
type Spec []Stop

// Validate checks that s has at least two stops, that the first stop is at
// 0 and the last at 1, and that positions are strictly increasing.
func (s Spec) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("%w: %d stops, need at least 2", ErrInvalidSpec, len(s))
	}
	for i, stop := range s {
		if math.IsNaN(stop.Pos) || stop.Pos < 0 || stop.Pos > 1 {
			return fmt.Errorf("%w: stop %d at %g is outside [0,1]", ErrInvalidSpec, i, stop.Pos)
		}
		if i > 0 && stop.Pos <= s[i-1].Pos {
			return fmt.Errorf("%w: stop %d at %g does not follow %g", ErrInvalidSpec, i, stop.Pos, s[i-1].Pos)
		}
	}
	if s[0].Pos != 0 {
		return fmt.Errorf("%w: first stop at %g, want 0", ErrInvalidSpec, s[0].Pos)
	}
	if last := s[len(s)-1].Pos; last != 1 {
		return fmt.Errorf("%w: last stop at %g, want 1", ErrInvalidSpec, last)
	}
	return nil
}

// RoundHalfUp rounds x to the nearest integer, with ties going away from
// zero.  For non-negative numbers this is the usual schoolbook rounding,
// independent of the binary rounding mode.
func RoundHalfUp(x float64) int {
	return int(math.Round(x))
}

// Rounding selects how segment heights are derived from stop positions.
type Rounding int

const (
	// RoundBoundaries rounds the pixel row of every stop, and gives each
	// segment the rows between its two boundaries.  The segment heights of
	// a valid spec add up to the requested height exactly.
	RoundBoundaries Rounding = iota

	// RoundSpans rounds the height of every segment on its own.  The total
	// can differ from the requested height by a few rows, which
	// [Field.Image] absorbs by cropping or padding.
	RoundSpans
)

func (r Rounding) String() string {
	switch r {
	case RoundBoundaries:
		return "boundaries"
	case RoundSpans:
		return "spans"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// SegmentHeights returns the number of rows for the segment between stop
// i-1 and stop i, for i = 1, ..., len(s)-1.  Heights can be zero or
// negative for specs which do not validate.
func (s Spec) SegmentHeights(height int, rounding Rounding) []int {
	if len(s) < 2 {
		return nil
	}
	h := float64(height)
	res := make([]int, len(s)-1)
	for i := 1; i < len(s); i++ {
		if rounding == RoundSpans {
			res[i-1] = RoundHalfUp(h * (s[i].Pos - s[i-1].Pos))
		} else {
			res[i-1] = RoundHalfUp(h*s[i].Pos) - RoundHalfUp(h*s[i-1].Pos)
		}
	}
	return res
}

// Row returns the pixel row at which the color of a stop positioned at pos
// appears in a field of the given height built with RoundBoundaries.
func Row(pos float64, height int) int {
	return max(min(RoundHalfUp(float64(height)*pos), height-1), 0)
}

// Build returns a width-column field with three channels, formed by
// stacking one vertical segment per pair of consecutive stops.  Each
// segment interpolates from the color of the earlier stop, in its first
// row, to the color of the later stop, in its last row.
//
// Build does not validate s.  Segments with non-positive height are empty,
// so the height of the result may differ from the requested height.
func Build(s Spec, width, height int, rounding Rounding) *Field {
	res := &Field{Width: max(width, 0), Channels: 3}
	for i, h := range s.SegmentHeights(height, rounding) {
		a, b := s[i].Color, s[i+1].Color
		seg := NewField(width, h, []Channel{
			{Start: float64(a.R), Stop: float64(b.R)},
			{Start: float64(a.G), Stop: float64(b.G)},
			{Start: float64(a.B), Stop: float64(b.B)},
		})
		// widths and channel counts agree by construction
		_ = res.Append(seg)
	}
	return res
}
