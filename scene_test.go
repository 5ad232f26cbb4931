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
	"testing"
)

var black = color.RGBA{A: 255}

func TestComposeOffsets(t *testing.T) {
	upper := image.NewRGBA(image.Rect(0, 0, 100, 50))
	lower := image.NewRGBA(image.Rect(0, 0, 100, 50))
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	upper.SetRGBA(3, 4, red)
	lower.SetRGBA(3, 4, green)
	lower.SetRGBA(90, 49, green) // moved partly off the canvas

	canvas := Compose(upper, lower, 100, 100, 20)
	if canvas.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Fatalf("bounds %v", canvas.Bounds())
	}
	if got := canvas.RGBAAt(3, 4); got != red {
		t.Errorf("upper pixel: got %v", got)
	}
	if got := canvas.RGBAAt(23, 54); got != green {
		t.Errorf("lower pixel at (23,54): got %v", got)
	}
	if got := canvas.RGBAAt(3, 54); got.A != 0 {
		t.Errorf("lower pixel was not moved: %v", got)
	}
	if got := canvas.RGBAAt(23, 4); got.A != 0 {
		t.Errorf("unexpected pixel at (23,4): %v", got)
	}
}

func TestComposeOddHeight(t *testing.T) {
	upper := image.NewRGBA(image.Rect(0, 0, 10, 4))
	lower := image.NewRGBA(image.Rect(0, 0, 10, 4))
	lower.SetRGBA(0, 0, color.RGBA{B: 255, A: 255})

	// half of 7 rounds up to 4
	canvas := Compose(upper, lower, 10, 7, 0)
	if got := canvas.RGBAAt(0, 4); got.B != 255 {
		t.Errorf("lower band does not start at row 4")
	}
}

func TestContentBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	if _, ok := ContentBounds(img, black); ok {
		t.Error("transparent image has content")
	}

	img.SetRGBA(5, 7, color.RGBA{R: 10, A: 255})
	img.SetRGBA(12, 3, color.RGBA{G: 1, A: 128})
	img.SetRGBA(20, 15, color.RGBA{A: 255}) // opaque black is background
	box, ok := ContentBounds(img, black)
	if !ok {
		t.Fatal("no content found")
	}
	if want := image.Rect(5, 3, 13, 8); box != want {
		t.Errorf("box %v, want %v", box, want)
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	box, ok = ContentBounds(img, white)
	if !ok {
		t.Fatal("no content found on white")
	}
	if want := image.Rect(5, 3, 21, 16); box != want {
		t.Errorf("box on white %v, want %v", box, want)
	}
}

func TestCropIdempotent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for x := 10; x < 25; x++ {
		img.SetRGBA(x, 30-x, color.RGBA{R: 200, G: 100, A: 255})
	}

	once, err := Crop(img, black)
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(0, 0, 15, 15); once.Bounds() != want {
		t.Errorf("cropped bounds %v, want %v", once.Bounds(), want)
	}
	box, ok := ContentBounds(once, black)
	if !ok || box != once.Bounds() {
		t.Errorf("content of cropped image is %v, want %v", box, once.Bounds())
	}

	twice, err := Crop(once, black)
	if err != nil {
		t.Fatal(err)
	}
	if twice.Bounds() != once.Bounds() || string(twice.Pix) != string(once.Pix) {
		t.Error("cropping twice changed the image")
	}
}

func TestCropEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.SetRGBA(2, 2, color.RGBA{A: 255})
	if _, err := Crop(img, black); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("got %v, want ErrEmptyContent", err)
	}
}

func TestFlatten(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 100, A: 128}) // premultiplied
	bg := color.RGBA{B: 200, A: 255}

	flat := Flatten(img, bg)
	if got := flat.RGBAAt(1, 0); got != bg {
		t.Errorf("transparent pixel: got %v, want %v", got, bg)
	}
	got := flat.RGBAAt(0, 0)
	if got.A != 255 || got.R != 100 || got.B < 98 || got.B > 100 {
		t.Errorf("blended pixel: got %v", got)
	}
}
