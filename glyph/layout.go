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

package glyph

import (
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	imgfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Layout is a line of shaped text, as outlines in pixel coordinates.  The
// y axis points down, and (0,0) is the top-left corner of the line.
type Layout struct {
	Outline *path.Data

	// Advance is the width of the line, including the advance of the last
	// glyph.
	Advance float64

	// Ascent is the distance from the top of the line to the baseline.
	Ascent float64

	// Glyphs is the number of glyphs on the line.
	Glyphs int
}

// Empty reports whether the layout has no outlines to draw.
func (l *Layout) Empty() bool {
	return l.Outline == nil || len(l.Outline.Cmds) == 0
}

// Layout shapes text as a single left-to-right line and collects the
// outlines of all glyphs.  The text is converted to Unicode normalization
// form NFC first, so that canonically equivalent strings give identical
// results.
func (f *Face) Layout(text string) (*Layout, error) {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(f.Size * 64)

	m, err := f.Font.outline.Metrics(&buf, ppem, imgfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	l := &Layout{
		Outline: &path.Data{},
		Ascent:  fixedToFloat(m.Ascent),
	}

	runes := []rune(norm.NFC.String(text))
	if len(runes) == 0 {
		return l, nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.Font.shaping),
		Size:      ppem,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(input)

	var x float64
	for _, g := range out.Glyphs {
		origin := vec.Vec2{
			X: x + fixedToFloat(g.XOffset),
			Y: l.Ascent - fixedToFloat(g.YOffset),
		}
		segs, err := f.Font.outline.LoadGlyph(&buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w: %w", g.GlyphID, ErrInvalidFont, err)
		}
		appendSegments(l.Outline, segs, origin)
		x += fixedToFloat(g.Advance)
	}
	l.Advance = x
	l.Glyphs = len(out.Glyphs)
	return l, nil
}

// appendSegments adds a glyph outline to p.  Contours of sfnt outlines are
// implicitly closed.
func appendSegments(p *path.Data, segs sfnt.Segments, origin vec.Vec2) {
	pt := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: origin.X + fixedToFloat(q.X), Y: origin.Y + fixedToFloat(q.Y)}
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	if open {
		p.Close()
	}
}

// detectScript returns the script of the first rune which is not white
// space.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
