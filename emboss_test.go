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
	"image/color"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"

	"seehuhn.de/go/emboss/glyph"
	"seehuhn.de/go/emboss/gradient"
	"seehuhn.de/go/emboss/layer"
	"seehuhn.de/go/emboss/palette"
)

func testBands(t *testing.T, size float64) (Band, Band) {
	t.Helper()
	var faces []*glyph.Face
	for _, data := range [][]byte{gobold.TTF, gobolditalic.TTF} {
		f, err := glyph.ParseFont(data)
		if err != nil {
			t.Fatal(err)
		}
		face, err := glyph.NewFace(f, size)
		if err != nil {
			t.Fatal(err)
		}
		faces = append(faces, face)
	}
	return Band{Face: faces[0], Layers: layer.UpperStack()},
		Band{Face: faces[1], Layers: layer.LowerStack()}
}

func smallOptions() Options {
	o := DefaultOptions()
	o.Width, o.Height = 500, 160
	o.LeftMargin, o.Subset = 30, 40
	o.FontSize = 50
	return o
}

func TestValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		field  string
		modify func(*Options)
	}{
		{"width", func(o *Options) { o.Width = 0 }},
		{"height", func(o *Options) { o.Height = 1 }},
		{"left margin", func(o *Options) { o.LeftMargin = -1 }},
		{"subset", func(o *Options) { o.Subset = -5 }},
		{"font size", func(o *Options) { o.FontSize = 0 }},
		{"background", func(o *Options) { o.Background = color.RGBA{} }},
		{"rounding", func(o *Options) { o.Rounding = 7 }},
	}
	for _, c := range cases {
		o := DefaultOptions()
		c.modify(&o)
		err := o.Validate()
		var cerr *ConfigError
		if !errors.As(err, &cerr) || cerr.Field != c.field {
			t.Errorf("%s: got %v", c.field, err)
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: error does not match ErrInvalidConfig", c.field)
		}
	}
}

func TestNewRendererErrors(t *testing.T) {
	upper, lower := testBands(t, 20)
	o := smallOptions()

	if _, err := NewRenderer(o, Band{}, lower, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("missing face: got %v", err)
	}

	bad := []palette.Entry{{Key: "gold", Stops: gradient.Spec{{Pos: 0}, {Pos: 0.5}}}}
	_, err := NewRenderer(o, upper, lower, bad)
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, gradient.ErrInvalidSpec) {
		t.Errorf("bad gradient: got %v", err)
	}

	only := []palette.Entry{{Key: "gold", Flat: gradient.RGB{R: 255}}}
	_, err = NewRenderer(o, upper, lower, only)
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, layer.ErrUnknownTexture) {
		t.Errorf("missing textures: got %v", err)
	}
}

func TestRender(t *testing.T) {
	upper, lower := testBands(t, 50)
	o := smallOptions()
	r, err := NewRenderer(o, upper, lower, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b := r.Palette().Bounds(); b != image.Rect(0, 0, 500, 80) {
		t.Errorf("palette bounds %v", b)
	}

	img, err := r.Render("50", "Go!")
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Min != (image.Point{}) || b.Dx() > o.Width || b.Dy() > o.Height || b.Dx() < 50 || b.Dy() < 50 {
		t.Fatalf("unexpected bounds %v", b)
	}

	// the crop is tight
	box, ok := ContentBounds(img, o.Background)
	if !ok || box != b {
		t.Errorf("content %v of cropped image %v", box, b)
	}

	again, err := r.Render("50", "Go!")
	if err != nil {
		t.Fatal(err)
	}
	if again.Bounds() != b || string(again.Pix) != string(img.Pix) {
		t.Error("repeated render differs")
	}
}

func TestRenderOpaque(t *testing.T) {
	upper, lower := testBands(t, 40)
	o := smallOptions()
	o.Opaque = true
	r, err := NewRenderer(o, upper, lower, nil)
	if err != nil {
		t.Fatal(err)
	}
	img, err := r.Render("A", "b")
	if err != nil {
		t.Fatal(err)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d has alpha %d", i/4, img.Pix[i])
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	upper, lower := testBands(t, 40)
	r, err := NewRenderer(smallOptions(), upper, lower, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, texts := range [][2]string{{"", ""}, {" ", "  "}} {
		if _, err := r.Render(texts[0], texts[1]); !errors.Is(err, ErrEmptyContent) {
			t.Errorf("%q: got %v, want ErrEmptyContent", texts, err)
		}
	}

	// one band is enough
	if _, err := r.Render("", "x"); err != nil {
		t.Errorf("lower text only: %v", err)
	}
}

func TestRenderConcurrent(t *testing.T) {
	upper, lower := testBands(t, 30)
	r, err := NewRenderer(smallOptions(), upper, lower, nil)
	if err != nil {
		t.Fatal(err)
	}
	want, err := r.Render("Hi", "there")
	if err != nil {
		t.Fatal(err)
	}

	const n = 4
	results := make([]*image.RGBA, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = r.Render("Hi", "there")
		}()
	}
	wg.Wait()

	for i := range n {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		if string(results[i].Pix) != string(want.Pix) {
			t.Errorf("render %d differs", i)
		}
	}
}
