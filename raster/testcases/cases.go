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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   Triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rectangle",
		Path:   Rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "circle",
		Path:   Circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_nonzero",
		Path:   Ring(32, 32, 24, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_evenodd",
		Path:   Ring(32, 32, 24, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
}

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   Polyline(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "line_square",
		Path:   Polyline(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "line_round",
		Path:   Polyline(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     roundStroke(8),
	},
	{
		Name:   "corner_miter",
		Path:   Polyline(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "corner_bevel",
		Path:   Polyline(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinBevel,
			MiterLimit: 10,
		},
	},
	{
		Name:   "corner_round",
		Path:   Polyline(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     roundStroke(6),
	},
	{
		Name:   "zigzag_round",
		Path:   Polyline(6, 40, 18, 20, 30, 44, 42, 18, 58, 40),
		Width:  64,
		Height: 64,
		Op:     roundStroke(5),
	},
	{
		Name:   "dot_round",
		Path:   Dot(32, 32),
		Width:  64,
		Height: 64,
		Op:     roundStroke(20),
	},
}

// contourCases stroke closed outlines the way text is outlined.
var contourCases = []TestCase{
	{
		Name:   "square_thin",
		Path:   Rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2),
	},
	{
		Name:   "square_wide",
		Path:   Rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     roundStroke(12),
	},
	{
		Name:   "ring_wide",
		Path:   Ring(32, 32, 22, 10),
		Width:  64,
		Height: 64,
		Op:     roundStroke(8),
	},
	{
		Name:   "circle_wide",
		Path:   Circle(32, 32, 18),
		Width:  64,
		Height: 64,
		Op:     roundStroke(10),
	},
	{
		Name:   "annulus",
		Path:   Annulus(32, 32, 24, 14),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4),
	},
	{
		Name:   "bowl",
		Path:   Bowl(32, 32, 24, 18, 7),
		Width:  64,
		Height: 64,
		Op:     roundStroke(6),
	},
}

// offsetCases draw shapes shifted by integer layer offsets.
var offsetCases = []TestCase{
	{
		Name:   "ring_shifted",
		Path:   Ring(24, 24, 16, 8),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(9, 12),
	},
	{
		Name:   "bowl_shifted_stroked",
		Path:   Bowl(24, 24, 18, 14, 5),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4),
		CTM:    matrix.Identity.Translate(14, 10),
	},
}
