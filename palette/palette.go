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

// Package palette holds the named fill textures used by the layers of a
// band.
//
// A [Palette] is built once for a canvas size and is never modified
// afterwards, so it can be shared between renders and goroutines.
package palette

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"sort"

	"golang.org/x/image/draw"

	"seehuhn.de/go/emboss/gradient"
)

// ErrInvalidEntry is returned for palette entries which cannot be turned
// into a texture.
var ErrInvalidEntry = errors.New("invalid palette entry")

// Entry describes one texture.  If Stops is non-empty, the texture is a
// vertical gradient, otherwise it is filled with the color Flat.
type Entry struct {
	Key   string
	Stops gradient.Spec
	Flat  gradient.RGB
}

// IsGradient reports whether e describes a gradient texture.
func (e Entry) IsGradient() bool {
	return len(e.Stops) > 0
}

// Palette maps texture keys to opaque images of a common size.
type Palette struct {
	bounds   image.Rectangle
	textures map[string]*image.RGBA
}

// New materializes the given entries at the given size.  Gradient specs are
// validated, and keys must be non-empty and unique.
func New(width, height int, entries []Entry, rounding gradient.Rounding) (*Palette, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidEntry, width, height)
	}
	p := &Palette{
		bounds:   image.Rect(0, 0, width, height),
		textures: make(map[string]*image.RGBA, len(entries)),
	}
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("%w: empty key", ErrInvalidEntry)
		}
		if _, dup := p.textures[e.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidEntry, e.Key)
		}

		var tex *image.RGBA
		if e.IsGradient() {
			if err := e.Stops.Validate(); err != nil {
				return nil, fmt.Errorf("texture %q: %w", e.Key, err)
			}
			tex = gradient.Build(e.Stops, width, height, rounding).Image(width, height)
		} else {
			tex = flat(p.bounds, e.Flat)
		}
		p.textures[e.Key] = tex
	}
	return p, nil
}

func flat(b image.Rectangle, c gradient.RGB) *image.RGBA {
	img := image.NewRGBA(b)
	src := image.NewUniform(rgba(c))
	draw.Draw(img, b, src, image.Point{}, draw.Src)
	return img
}

// Merge returns base with the entries of extra appended, where an entry of
// extra replaces the entry of base with the same key.
func Merge(base, extra []Entry) []Entry {
	res := make([]Entry, 0, len(base)+len(extra))
	for _, e := range base {
		if !slices.ContainsFunc(extra, func(x Entry) bool { return x.Key == e.Key }) {
			res = append(res, e)
		}
	}
	return append(res, extra...)
}

// Texture returns the texture stored under key, or nil if there is none.
// The returned image must not be modified.
func (p *Palette) Texture(key string) *image.RGBA {
	return p.textures[key]
}

// Has reports whether p has a texture for key.
func (p *Palette) Has(key string) bool {
	_, ok := p.textures[key]
	return ok
}

// Keys returns the texture keys in sorted order.
func (p *Palette) Keys() []string {
	keys := make([]string, 0, len(p.textures))
	for k := range p.textures {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bounds returns the common bounds of all textures.
func (p *Palette) Bounds() image.Rectangle {
	return p.bounds
}
