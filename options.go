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
	"image/color"

	"seehuhn.de/go/emboss/gradient"
)

// Options control the size and arrangement of the rendered image.
type Options struct {
	// Width and Height give the size of the canvas before cropping.  Each
	// band is Width pixels wide and half of Height, rounded half up, tall.
	Width, Height int

	// LeftMargin is the distance from the left edge of a band to the text.
	LeftMargin int

	// Subset is the horizontal offset of the lower band.
	Subset int

	// FontSize is the text size in pixels per em, for callers which load
	// faces based on the options.
	FontSize float64

	// Background is the color against which content is detected when
	// cropping, and onto which the result is flattened if Opaque is set.
	// It must be opaque.
	Background color.RGBA

	// Opaque flattens the cropped image onto the background.  Otherwise
	// the parts not covered by any layer stay transparent.
	Opaque bool

	// Rounding selects how the rows of gradient textures are divided
	// between stops.
	Rounding gradient.Rounding
}

// DefaultOptions returns the default options: a 1500×300 canvas, text at
// 50 pixels from the left, the lower band shifted by 70 pixels and a
// black background.
func DefaultOptions() Options {
	return Options{
		Width:      1500,
		Height:     300,
		LeftMargin: 50,
		Subset:     70,
		FontSize:   100,
		Background: color.RGBA{A: 255},
		Rounding:   gradient.RoundBoundaries,
	}
}

// BandHeight returns the height of each band.
func (o Options) BandHeight() int {
	return gradient.RoundHalfUp(float64(o.Height) / 2)
}

// Validate checks the options.  Errors are of type [*ConfigError].
func (o Options) Validate() error {
	switch {
	case o.Width <= 0:
		return configError("width", "%d is not positive", o.Width)
	case o.Height < 2:
		return configError("height", "%d is less than 2", o.Height)
	case o.LeftMargin < 0:
		return configError("left margin", "%d is negative", o.LeftMargin)
	case o.Subset < 0:
		return configError("subset", "%d is negative", o.Subset)
	case !(o.FontSize > 0):
		return configError("font size", "%g is not positive", o.FontSize)
	case o.Background.A != 255:
		return configError("background", "alpha %d, must be opaque", o.Background.A)
	case o.Rounding != gradient.RoundBoundaries && o.Rounding != gradient.RoundSpans:
		return configError("rounding", "unknown mode %d", int(o.Rounding))
	}
	return nil
}
