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

package style

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/emboss"
	"seehuhn.de/go/emboss/glyph"
	"seehuhn.de/go/emboss/gradient"
	"seehuhn.de/go/emboss/layer"
)

const fullStyle = `
emboss.config = {
  width = 800, height = 200, left_margin = 20, subset = 30,
  font_size = 60.5, background = "#102030", opaque = true,
  rounding = "spans",
  upper_font = "fonts/upper.ttf", lower_font = "/abs/lower.ttf",
}
emboss.upper = {
  { dx = 2, dy = 3, stroke = 10, texture = "ink" },
  { texture = "chrome" },
}
emboss.lower = {}
emboss.textures.chrome = { stops = { {0, {0, 15, 36}}, {0.5, {10, 20, 30}}, {1, {255, 255, 255}} } }
emboss.textures.ink = { flat = {16, 25, 58} }
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(fullStyle), "/styles")
	if err != nil {
		t.Fatal(err)
	}

	o := s.Options
	if o.Width != 800 || o.Height != 200 || o.LeftMargin != 20 || o.Subset != 30 {
		t.Errorf("wrong geometry: %+v", o)
	}
	if o.FontSize != 60.5 {
		t.Errorf("font size %g, want 60.5", o.FontSize)
	}
	if want := (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}); o.Background != want {
		t.Errorf("background %v, want %v", o.Background, want)
	}
	if !o.Opaque {
		t.Error("opaque not set")
	}
	if o.Rounding != gradient.RoundSpans {
		t.Errorf("rounding %v, want spans", o.Rounding)
	}

	if want := filepath.Join("/styles", "fonts/upper.ttf"); s.UpperFont != want {
		t.Errorf("upper font %q, want %q", s.UpperFont, want)
	}
	if s.LowerFont != "/abs/lower.ttf" {
		t.Errorf("lower font %q", s.LowerFont)
	}

	upper := s.Upper.Specs()
	if len(upper) != 2 {
		t.Fatalf("%d upper layers, want 2", len(upper))
	}
	if upper[0].Offset.X != 2 || upper[0].Offset.Y != 3 || upper[0].Stroke != 10 || upper[0].Texture != "ink" {
		t.Errorf("wrong first layer %v", upper[0])
	}
	if upper[1].Offset.X != 0 || upper[1].Offset.Y != 0 || upper[1].Stroke != 0 || upper[1].Texture != "chrome" {
		t.Errorf("wrong second layer %v", upper[1])
	}
	if s.Lower.Len() != 0 {
		t.Errorf("%d lower layers, want 0", s.Lower.Len())
	}

	if len(s.Textures) != 2 {
		t.Fatalf("%d textures, want 2", len(s.Textures))
	}
	chrome, ink := s.Textures[0], s.Textures[1]
	if chrome.Key != "chrome" || ink.Key != "ink" {
		t.Fatalf("textures not sorted: %q, %q", chrome.Key, ink.Key)
	}
	if len(chrome.Stops) != 3 || chrome.Stops[1].Pos != 0.5 ||
		chrome.Stops[1].Color != (gradient.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("wrong stops %v", chrome.Stops)
	}
	if ink.IsGradient() || ink.Flat != (gradient.RGB{R: 16, G: 25, B: 58}) {
		t.Errorf("wrong flat texture %+v", ink)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "-- nothing to see here", "emboss.config = {}"} {
		s, err := Parse([]byte(src), "")
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if s.Options != emboss.DefaultOptions() {
			t.Errorf("%q: options changed: %+v", src, s.Options)
		}
		if s.Upper.Len() != layer.UpperStack().Len() || s.Lower.Len() != layer.LowerStack().Len() {
			t.Errorf("%q: default stacks not kept", src)
		}
		if len(s.Textures) != 0 || s.UpperFont != "" || s.LowerFont != "" {
			t.Errorf("%q: unexpected settings %+v", src, s)
		}
	}
}

func TestParseComputed(t *testing.T) {
	src := `
local layers = {}
for i = 1, 4 do
  layers[#layers + 1] = { dx = i, dy = i, stroke = 10 - 2*i, texture = "white" }
end
emboss.upper = layers
emboss.config.width = 100 * 7
`
	s, err := Parse([]byte(src), "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Options.Width != 700 {
		t.Errorf("width %d, want 700", s.Options.Width)
	}
	specs := s.Upper.Specs()
	if len(specs) != 4 || specs[3].Stroke != 2 || specs[3].Offset.X != 4 {
		t.Errorf("wrong layers %v", specs)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src   string
		field string
	}{
		{"emboss.config = {", "style file"},
		{`error("broken")`, "style file"},
		{"while true do end", "style file"},
		{"emboss = 1", "emboss"},
		{"emboss.config = 7", "emboss.config"},
		{`emboss.config.width = "wide"`, "emboss.config.width"},
		{"emboss.config.width = 10.5", "emboss.config.width"},
		{"emboss.config.width = 0", "emboss.config.width"},
		{"emboss.config.left_margin = -1", "emboss.config.left_margin"},
		{"emboss.config.font_size = {}", "emboss.config.font_size"},
		{"emboss.config.opaque = 1", "emboss.config.opaque"},
		{`emboss.config.background = "black"`, "emboss.config.background"},
		{`emboss.config.background = "#12345g"`, "emboss.config.background"},
		{`emboss.config.rounding = "floor"`, "emboss.config.rounding"},
		{"emboss.upper = 5", "emboss.upper"},
		{"emboss.upper = { 5 }", "emboss.upper[1]"},
		{`emboss.upper = { { stroke = -1, texture = "red" } }`, "emboss.upper"},
		{"emboss.lower = { { stroke = 2 } }", "emboss.lower"},
		{`emboss.lower = { { texture = "red", dx = "x" } }`, "emboss.lower[1].dx"},
		{"emboss.textures = 3", "emboss.textures"},
		{"emboss.textures[1] = { flat = {1, 2, 3} }", "emboss.textures"},
		{"emboss.textures.a = 3", "emboss.textures.a"},
		{"emboss.textures.a = {}", "emboss.textures.a"},
		{"emboss.textures.a = { flat = {1, 2, 3}, stops = {} }", "emboss.textures.a"},
		{"emboss.textures.a = { flat = {1, 2, 300} }", "emboss.textures.a.flat"},
		{"emboss.textures.a = { flat = {1, 2} }", "emboss.textures.a.flat"},
		{"emboss.textures.a = { flat = {1, 2, 3, 4} }", "emboss.textures.a.flat"},
		{"emboss.textures.a = { stops = {} }", "emboss.textures.a.stops"},
		{"emboss.textures.a = { stops = { {0, {0,0,0}}, {0.5, {1,1,1}} } }", "emboss.textures.a.stops"},
		{"emboss.textures.a = { stops = { {1, {0,0,0}}, {0, {1,1,1}} } }", "emboss.textures.a.stops"},
		{`emboss.textures.a = { stops = { {"top", {0,0,0}}, {1, {1,1,1}} } }`, "emboss.textures.a.stops[1]"},
		{"emboss.textures.a = { stops = { 0, 1 } }", "emboss.textures.a.stops[1]"},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.src), "")
		if err == nil {
			t.Errorf("%q: no error", c.src)
			continue
		}
		if !errors.Is(err, emboss.ErrInvalidConfig) {
			t.Errorf("%q: %v does not match ErrInvalidConfig", c.src, err)
		}
		var cerr *emboss.ConfigError
		if !errors.As(err, &cerr) {
			t.Errorf("%q: %T is not a ConfigError", c.src, err)
			continue
		}
		if cerr.Field != c.field {
			t.Errorf("%q: field %q, want %q", c.src, cerr.Field, c.field)
		}
	}
}

func TestParseWrapsLowerErrors(t *testing.T) {
	_, err := Parse([]byte("emboss.textures.a = { stops = { {0, {0,0,0}} } }"), "")
	if !errors.Is(err, gradient.ErrInvalidSpec) {
		t.Errorf("got %v, want ErrInvalidSpec", err)
	}
	_, err = Parse([]byte(`emboss.upper = { { stroke = -3, texture = "red" } }`), "")
	if !errors.Is(err, layer.ErrInvalidLayer) {
		t.Errorf("got %v, want ErrInvalidLayer", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "style.lua")
	src := `emboss.config.upper_font = "my.ttf"`
	if err := os.WriteFile(fname, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "my.ttf"); s.UpperFont != want {
		t.Errorf("upper font %q, want %q", s.UpperFont, want)
	}

	if _, err := Load(filepath.Join(dir, "missing.lua")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}

func testFonts(t *testing.T) (*glyph.Font, *glyph.Font) {
	t.Helper()
	upper, err := glyph.ParseFont(gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	lower, err := glyph.ParseFont(gobolditalic.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return upper, lower
}

func TestNewRenderer(t *testing.T) {
	src := `
emboss.config = { width = 400, height = 120, left_margin = 10, subset = 20, font_size = 40 }
emboss.textures.ink = { flat = {16, 25, 58} }
emboss.upper = { { stroke = 4, texture = "ink" }, { texture = "gold" } }
`
	s, err := Parse([]byte(src), "")
	if err != nil {
		t.Fatal(err)
	}
	upper, lower := testFonts(t)
	r, err := s.NewRenderer(upper, lower)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Palette().Has("ink") || !r.Palette().Has("gold") {
		t.Errorf("palette is missing textures: %v", r.Palette().Keys())
	}

	img, err := r.Render("Go", "Go")
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() > 400 || img.Bounds().Dy() > 120 {
		t.Errorf("image %v larger than the canvas", img.Bounds())
	}
}

func TestNewRendererFontFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "regular.ttf"), goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.ttf"), []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	upper, lower := testFonts(t)

	s, err := Parse([]byte(`emboss.config.lower_font = "regular.ttf"`), dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.NewRenderer(upper, lower); err != nil {
		t.Errorf("regular.ttf: %v", err)
	}

	s, err = Parse([]byte(`emboss.config.upper_font = "broken.ttf"`), dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.NewRenderer(upper, lower); !errors.Is(err, glyph.ErrInvalidFont) {
		t.Errorf("broken.ttf: got %v, want ErrInvalidFont", err)
	}
}

func TestNewRendererUnknownTexture(t *testing.T) {
	s, err := Parse([]byte(`emboss.lower = { { texture = "nosuch" } }`), "")
	if err != nil {
		t.Fatal(err)
	}
	upper, lower := testFonts(t)
	_, err = s.NewRenderer(upper, lower)
	if !errors.Is(err, layer.ErrUnknownTexture) {
		t.Errorf("got %v, want ErrUnknownTexture", err)
	}
}
