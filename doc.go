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

// Package emboss renders short texts in the style of embossed, chromed
// lettering.
//
// The image is made of two bands of text, "upper" and "lower".  Each band
// is painted by a [layer.Stack]: a sequence of layers, each drawing the
// text with its own offset and stroke width and filling it with a texture
// from a [palette.Palette].  The two bands are joined with the lower band
// shifted right by [Options.Subset] and down by half the image height, and
// the result is cropped to its content.
//
// A [Renderer] holds everything which does not depend on the text, and can
// be used for any number of renders:
//
//	upper := emboss.Band{Face: boldFace, Layers: layer.UpperStack()}
//	lower := emboss.Band{Face: serifFace, Layers: layer.LowerStack()}
//	r, err := emboss.NewRenderer(emboss.DefaultOptions(), upper, lower, nil)
//	if err != nil {
//		...
//	}
//	img, err := r.Render("5000兆円", "欲しい!")
package emboss
