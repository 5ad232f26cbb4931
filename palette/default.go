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

package palette

import (
	"image/color"

	"seehuhn.de/go/emboss/gradient"
)

func rgba(c gradient.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// DefaultEntries returns the built-in textures.
func DefaultEntries() []Entry {
	return []Entry{
		{Key: "downerSilver", Stops: gradient.Spec{
			{Pos: 0, Color: gradient.RGB{R: 0, G: 15, B: 36}},
			{Pos: 0.10, Color: gradient.RGB{R: 255, G: 255, B: 255}},
			{Pos: 0.18, Color: gradient.RGB{R: 55, G: 58, B: 59}},
			{Pos: 0.25, Color: gradient.RGB{R: 55, G: 58, B: 59}},
			{Pos: 0.5, Color: gradient.RGB{R: 200, G: 200, B: 200}},
			{Pos: 0.75, Color: gradient.RGB{R: 55, G: 58, B: 59}},
			{Pos: 0.85, Color: gradient.RGB{R: 25, G: 20, B: 31}},
			{Pos: 0.91, Color: gradient.RGB{R: 240, G: 240, B: 240}},
			{Pos: 0.95, Color: gradient.RGB{R: 166, G: 175, B: 194}},
			{Pos: 1, Color: gradient.RGB{R: 50, G: 50, B: 50}},
		}},
		{Key: "gold", Stops: gradient.Spec{
			{Pos: 0, Color: gradient.RGB{R: 253, G: 241, B: 0}},
			{Pos: 0.25, Color: gradient.RGB{R: 245, G: 253, B: 187}},
			{Pos: 0.4, Color: gradient.RGB{R: 255, G: 255, B: 255}},
			{Pos: 0.75, Color: gradient.RGB{R: 253, G: 219, B: 9}},
			{Pos: 0.9, Color: gradient.RGB{R: 127, G: 53, B: 0}},
			{Pos: 1, Color: gradient.RGB{R: 243, G: 196, B: 11}},
		}},
		{Key: "red", Stops: gradient.Spec{
			{Pos: 0, Color: gradient.RGB{R: 230, G: 0, B: 0}},
			{Pos: 0.5, Color: gradient.RGB{R: 123, G: 0, B: 0}},
			{Pos: 0.51, Color: gradient.RGB{R: 240, G: 0, B: 0}},
			{Pos: 1, Color: gradient.RGB{R: 5, G: 0, B: 0}},
		}},
		{Key: "strokeRed", Stops: gradient.Spec{
			{Pos: 0, Color: gradient.RGB{R: 255, G: 100, B: 0}},
			{Pos: 0.5, Color: gradient.RGB{R: 123, G: 0, B: 0}},
			{Pos: 0.51, Color: gradient.RGB{R: 240, G: 0, B: 0}},
			{Pos: 1, Color: gradient.RGB{R: 5, G: 0, B: 0}},
		}},
		{Key: "silver2", Stops: gradient.Spec{
			{Pos: 0, Color: gradient.RGB{R: 245, G: 246, B: 248}},
			{Pos: 0.15, Color: gradient.RGB{R: 255, G: 255, B: 255}},
			{Pos: 0.35, Color: gradient.RGB{R: 195, G: 213, B: 220}},
			{Pos: 0.5, Color: gradient.RGB{R: 160, G: 190, B: 201}},
			{Pos: 0.51, Color: gradient.RGB{R: 160, G: 190, B: 201}},
			{Pos: 0.52, Color: gradient.RGB{R: 196, G: 215, B: 222}},
			{Pos: 1, Color: gradient.RGB{R: 255, G: 255, B: 255}},
		}},
		{Key: "strokeNavy", Stops: gradient.Spec{
			{Pos: 0, Color: gradient.RGB{R: 16, G: 25, B: 58}},
			{Pos: 0.03, Color: gradient.RGB{R: 255, G: 255, B: 255}},
			{Pos: 0.08, Color: gradient.RGB{R: 16, G: 25, B: 58}},
			{Pos: 0.2, Color: gradient.RGB{R: 16, G: 25, B: 58}},
			{Pos: 1, Color: gradient.RGB{R: 16, G: 25, B: 58}},
		}},
		{Key: "baseStrokeBlack", Flat: gradient.RGB{R: 0, G: 0, B: 0}},
		{Key: "strokeBlack", Flat: gradient.RGB{R: 16, G: 25, B: 58}},
		{Key: "strokeWhite", Flat: gradient.RGB{R: 221, G: 221, B: 221}},
		{Key: "baseStrokeWhite", Flat: gradient.RGB{R: 255, G: 255, B: 255}},
	}
}

// Default builds the built-in textures at the given size, using boundary
// rounding for the gradients.
func Default(width, height int) (*Palette, error) {
	return New(width, height, DefaultEntries(), gradient.RoundBoundaries)
}
