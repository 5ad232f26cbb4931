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
	"errors"
	"image"
	"slices"
	"testing"

	"seehuhn.de/go/emboss/gradient"
)

func TestDefault(t *testing.T) {
	p, err := Default(1500, 150)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"baseStrokeBlack", "baseStrokeWhite", "downerSilver", "gold", "red",
		"silver2", "strokeBlack", "strokeNavy", "strokeRed", "strokeWhite",
	}
	if keys := p.Keys(); !slices.Equal(keys, want) {
		t.Errorf("keys %v, want %v", keys, want)
	}
	for _, k := range want {
		tex := p.Texture(k)
		if tex == nil {
			t.Fatalf("%s: missing", k)
		}
		if tex.Bounds() != image.Rect(0, 0, 1500, 150) {
			t.Errorf("%s: bounds %v", k, tex.Bounds())
		}
		for i := 3; i < len(tex.Pix); i += 4 {
			if tex.Pix[i] != 255 {
				t.Fatalf("%s: pixel %d is not opaque", k, i/4)
			}
		}
	}
	if p.Has("silver") || p.Texture("silver") != nil {
		t.Error("unknown key reported as present")
	}
}

// TestGoldColumn samples the gold texture at the rows of its stops.
func TestGoldColumn(t *testing.T) {
	p, err := Default(1500, 150)
	if err != nil {
		t.Fatal(err)
	}
	gold := p.Texture("gold")

	cases := []struct {
		pos  float64
		want gradient.RGB
	}{
		{0, gradient.RGB{R: 253, G: 241, B: 0}},
		{0.25, gradient.RGB{R: 245, G: 253, B: 187}},
		{0.4, gradient.RGB{R: 255, G: 255, B: 255}},
		{0.75, gradient.RGB{R: 253, G: 219, B: 9}},
		{0.9, gradient.RGB{R: 127, G: 53, B: 0}},
		{1.0, gradient.RGB{R: 243, G: 196, B: 11}},
	}
	for _, c := range cases {
		y := gradient.Row(c.pos, 150)
		got := gold.RGBAAt(0, y)
		if got.R != c.want.R || got.G != c.want.G || got.B != c.want.B {
			t.Errorf("fraction %g (row %d): got %v, want %v", c.pos, y, got, c.want)
		}
	}
}

func TestFlat(t *testing.T) {
	p, err := Default(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	tex := p.Texture("strokeBlack")
	for y := range 4 {
		for x := range 8 {
			c := tex.RGBAAt(x, y)
			if c.R != 16 || c.G != 25 || c.B != 58 || c.A != 255 {
				t.Fatalf("pixel (%d,%d): %v", x, y, c)
			}
		}
	}
}

func TestNewErrors(t *testing.T) {
	bad := gradient.Spec{{Pos: 0}, {Pos: 0.7}, {Pos: 0.3}, {Pos: 1}}
	cases := []struct {
		name    string
		w, h    int
		entries []Entry
		want    error
	}{
		{"empty size", 0, 10, nil, ErrInvalidEntry},
		{"empty key", 10, 10, []Entry{{Key: ""}}, ErrInvalidEntry},
		{"duplicate", 10, 10, []Entry{{Key: "a"}, {Key: "a"}}, ErrInvalidEntry},
		{"unordered stops", 10, 10, []Entry{{Key: "a", Stops: bad}}, gradient.ErrInvalidSpec},
	}
	for _, c := range cases {
		_, err := New(c.w, c.h, c.entries, gradient.RoundBoundaries)
		if !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}
}

func TestMerge(t *testing.T) {
	base := []Entry{{Key: "a"}, {Key: "b"}, {Key: "c"}}
	extra := []Entry{{Key: "b", Flat: gradient.RGB{R: 1}}, {Key: "d"}}
	got := Merge(base, extra)

	var keys []string
	for _, e := range got {
		keys = append(keys, e.Key)
	}
	if want := []string{"a", "c", "b", "d"}; !slices.Equal(keys, want) {
		t.Errorf("keys %v, want %v", keys, want)
	}
	if got[2].Flat.R != 1 {
		t.Errorf("entry b was not replaced")
	}
}
