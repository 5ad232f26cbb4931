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

// Package glyph turns text into coverage masks.
//
// Text is shaped with HarfBuzz, glyph outlines are loaded from the font at
// the face size and the outlines are filled and stroked by the scanline
// rasterizer of package raster.  Positions follow the "left, ascender"
// anchoring convention: the origin of a [Layout] is the top-left corner of
// the line, and the baseline lies one ascent below it.
package glyph

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// ErrInvalidFont is returned when font data cannot be used.
var ErrInvalidFont = errors.New("invalid font")

// Font is a parsed OpenType or TrueType font.  A Font is read-only after
// construction and can be shared between goroutines.
type Font struct {
	name    string
	shaping *font.Font
	outline *sfnt.Font
}

// ParseFont parses font data.  The data must not be modified afterwards.
func ParseFont(data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	outline, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	if outline.NumGlyphs() == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrInvalidFont)
	}

	f := &Font{
		shaping: face.Font,
		outline: outline,
	}
	if name, err := outline.Name(nil, sfnt.NameIDFull); err == nil {
		f.name = name
	}
	return f, nil
}

// LoadFont reads and parses a font file.
func LoadFont(fname string) (*Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if f.name == "" {
		f.name = fname
	}
	return f, nil
}

// Name returns the full font name, or the file name if the font has no
// name table entry.
func (f *Font) Name() string {
	return f.name
}

// Face is a font at a given size, in pixels per em.
type Face struct {
	Font *Font
	Size float64
}

// NewFace returns a face for f at the given size.
func NewFace(f *Font, size float64) (*Face, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: no font", ErrInvalidFont)
	}
	if !(size > 0) {
		return nil, fmt.Errorf("%w: size %g", ErrInvalidFont, size)
	}
	return &Face{Font: f, Size: size}, nil
}
