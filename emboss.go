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
	"errors"
	"image"
	"log/slog"

	"seehuhn.de/go/emboss/glyph"
	"seehuhn.de/go/emboss/layer"
	"seehuhn.de/go/emboss/palette"
)

// Band is the font and the layers of one of the two text bands.
type Band struct {
	Face   *glyph.Face
	Layers layer.Stack
}

// Renderer renders texts with fixed options, bands and textures.
// A Renderer is immutable and can be used concurrently.
type Renderer struct {
	opts         Options
	upper, lower Band
	pal          *palette.Palette
}

// NewRenderer builds the palette for the band size and checks that all
// layers refer to known textures.  If entries is nil, the built-in
// textures are used.
func NewRenderer(opts Options, upper, lower Band, entries []palette.Entry) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if upper.Face == nil {
		return nil, configError("upper font", "missing")
	}
	if lower.Face == nil {
		return nil, configError("lower font", "missing")
	}
	if entries == nil {
		entries = palette.DefaultEntries()
	}

	w, h := opts.Width, opts.BandHeight()
	pal, err := palette.New(w, h, entries, opts.Rounding)
	if err != nil {
		return nil, &ConfigError{Field: "textures", Err: err}
	}
	if err := upper.Layers.Check(pal); err != nil {
		return nil, &ConfigError{Field: "upper layers", Err: err}
	}
	if err := lower.Layers.Check(pal); err != nil {
		return nil, &ConfigError{Field: "lower layers", Err: err}
	}
	Logger().Debug("palette built",
		slog.Int("width", w), slog.Int("height", h),
		slog.Any("textures", pal.Keys()),
		slog.String("rounding", opts.Rounding.String()))

	return &Renderer{
		opts:  opts,
		upper: upper,
		lower: lower,
		pal:   pal,
	}, nil
}

// Options returns the options of r.
func (r *Renderer) Options() Options {
	return r.opts
}

// Palette returns the textures used by r.
func (r *Renderer) Palette() *palette.Palette {
	return r.pal
}

// Render paints both bands, joins them and crops the result to its
// content.  If neither text produces visible pixels, ErrEmptyContent is
// returned.
func (r *Renderer) Render(upperText, lowerText string) (*image.RGBA, error) {
	log := Logger()

	top, err := r.band("upper", upperText, r.upper)
	if err != nil {
		return nil, err
	}
	bottom, err := r.band("lower", lowerText, r.lower)
	if err != nil {
		return nil, err
	}

	o := r.opts
	canvas := Compose(top, bottom, o.Width, o.Height, o.Subset)
	img, err := Crop(canvas, o.Background)
	if err != nil {
		if errors.Is(err, ErrEmptyContent) {
			log.Debug("nothing to crop", slog.String("upper", upperText), slog.String("lower", lowerText))
		}
		return nil, err
	}
	log.Debug("scene cropped", slog.Int("width", img.Bounds().Dx()), slog.Int("height", img.Bounds().Dy()))

	if o.Opaque {
		img = Flatten(img, o.Background)
	}
	return img, nil
}

func (r *Renderer) band(name, text string, b Band) (*image.RGBA, error) {
	o := r.opts
	img, err := layer.Compose(text, b.Face, o.Width, o.BandHeight(), o.LeftMargin, b.Layers, r.pal)
	if err != nil {
		return nil, err
	}
	Logger().Debug("band composed",
		slog.String("band", name),
		slog.String("text", text),
		slog.Int("layers", b.Layers.Len()))
	return img, nil
}
