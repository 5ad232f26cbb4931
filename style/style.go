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

// Package style reads emboss style files.
//
// A style file is a Lua program.  Before it runs, a global table "emboss"
// is defined, with empty subtables "config" and "textures".  The program
// fills in the fields it wants to change:
//
//	emboss.config = {
//	  width = 1500, height = 300, left_margin = 50, subset = 70,
//	  font_size = 100, background = "#000000", opaque = false,
//	  rounding = "boundaries",
//	  upper_font = "fonts/upper.otf", lower_font = "fonts/lower.otf",
//	}
//	emboss.upper = { { dx = 4, dy = 4, stroke = 22, texture = "baseStrokeBlack" } }
//	emboss.textures = {
//	  chrome = { stops = { {0, {0, 15, 36}}, {1, {255, 255, 255}} } },
//	  ink    = { flat = {16, 25, 58} },
//	}
//
// Fields which are not set keep their default values.  If emboss.upper or
// emboss.lower is not set, the built-in layer stacks are used.  Entries of
// emboss.textures are added to the built-in textures, replacing built-in
// textures of the same name.
package style

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"

	"seehuhn.de/go/emboss"
	"seehuhn.de/go/emboss/glyph"
	"seehuhn.de/go/emboss/layer"
	"seehuhn.de/go/emboss/palette"
)

// Limits for running a style file.
const (
	cpuLimit    = 10_000_000
	memoryLimit = 50 * 1024 * 1024
)

// Style holds the settings read from a style file.
type Style struct {
	Options emboss.Options

	// UpperFont and LowerFont are the font file names given in the style
	// file, resolved relative to the directory of the file.  They are empty
	// if the file does not name a font.
	UpperFont, LowerFont string

	Upper, Lower layer.Stack

	// Textures lists the textures defined in the style file, sorted by
	// key.  These are used in addition to the built-in textures.
	Textures []palette.Entry
}

// Default returns the style used when no style file is given.
func Default() *Style {
	return &Style{
		Options: emboss.DefaultOptions(),
		Upper:   layer.UpperStack(),
		Lower:   layer.LowerStack(),
	}
}

// Load reads and runs the style file fname.
func Load(fname string) (*Style, error) {
	src, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return Parse(src, filepath.Dir(fname))
}

// Parse runs the style program src.  Relative font names are resolved
// against dir.
//
// Errors in the program itself, and values of the wrong type or range,
// are reported as [*emboss.ConfigError].
func Parse(src []byte, dir string) (*Style, error) {
	runtime := rt.New(io.Discard)
	cleanup := lib.LoadAll(runtime)
	defer cleanup()

	root := rt.NewTable()
	root.Set(rt.StringValue("config"), rt.TableValue(rt.NewTable()))
	root.Set(rt.StringValue("textures"), rt.TableValue(rt.NewTable()))
	runtime.GlobalEnv().Set(rt.StringValue("emboss"), rt.TableValue(root))

	if _, err := run(runtime, "style", src); err != nil {
		return nil, &emboss.ConfigError{Field: "style file", Err: err}
	}

	rootVal := runtime.GlobalEnv().Get(rt.StringValue("emboss"))
	root, ok := rootVal.TryTable()
	if !ok {
		return nil, fieldError("emboss", "not a table")
	}

	s := Default()
	if err := s.readConfig(root, dir); err != nil {
		return nil, err
	}
	for _, band := range []struct {
		key   string
		stack *layer.Stack
	}{
		{"upper", &s.Upper},
		{"lower", &s.Lower},
	} {
		val := root.Get(rt.StringValue(band.key))
		if val == rt.NilValue {
			continue
		}
		stack, err := readStack("emboss."+band.key, val)
		if err != nil {
			return nil, err
		}
		*band.stack = stack
	}

	names, err := textureNames(runtime, root)
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		textures, _ := root.Get(rt.StringValue("textures")).TryTable()
		for _, name := range names {
			e, err := readEntry("emboss.textures."+name, textures.Get(rt.StringValue(name)))
			if err != nil {
				return nil, err
			}
			e.Key = name
			s.Textures = append(s.Textures, e)
		}
	}

	return s, nil
}

// run compiles and executes a Lua chunk within the resource limits.
// golua panics when a hard limit is exceeded; this is reported as an error.
func run(runtime *rt.Runtime, name string, src []byte) (res rt.Value, err error) {
	closure, err := runtime.CompileAndLoadLuaChunk(name, src, rt.TableValue(runtime.GlobalEnv()))
	if err != nil {
		return rt.NilValue, fmt.Errorf("compile: %w", err)
	}

	runtime.PushContext(rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    cpuLimit,
			Memory: memoryLimit,
		},
	})
	defer runtime.PopContext()
	defer func() {
		if r := recover(); r != nil {
			res, err = rt.NilValue, fmt.Errorf("run: resource limit exceeded: %v", r)
		}
	}()

	res, err = rt.Call1(runtime.MainThread(), rt.FunctionValue(closure))
	if err != nil {
		return rt.NilValue, fmt.Errorf("run: %w", err)
	}
	return res, nil
}

// listTextures returns the sorted keys of emboss.textures.
const listTextures = `
local names = {}
for k in pairs(emboss.textures) do
  if type(k) ~= "string" then
    error("texture names must be strings")
  end
  names[#names + 1] = k
end
table.sort(names)
return names
`

func textureNames(runtime *rt.Runtime, root *rt.Table) ([]string, error) {
	val := root.Get(rt.StringValue("textures"))
	if val == rt.NilValue {
		return nil, nil
	}
	if _, ok := val.TryTable(); !ok {
		return nil, fieldError("emboss.textures", "not a table")
	}

	res, err := run(runtime, "textures", []byte(listTextures))
	if err != nil {
		return nil, &emboss.ConfigError{Field: "emboss.textures", Err: err}
	}
	list, ok := res.TryTable()
	if !ok {
		return nil, fieldError("emboss.textures", "cannot list entries")
	}
	var names []string
	for i := int64(1); ; i++ {
		v := list.Get(rt.IntValue(i))
		if v == rt.NilValue {
			break
		}
		name, _ := v.TryString()
		names = append(names, name)
	}
	return names, nil
}

// NewRenderer loads the fonts named in s and returns a renderer for the
// style.  The fonts upper and lower are used for bands where the style does
// not name a font file.
func (s *Style) NewRenderer(upper, lower *glyph.Font) (*emboss.Renderer, error) {
	var err error
	if s.UpperFont != "" {
		upper, err = glyph.LoadFont(s.UpperFont)
		if err != nil {
			return nil, err
		}
	}
	if s.LowerFont != "" {
		lower, err = glyph.LoadFont(s.LowerFont)
		if err != nil {
			return nil, err
		}
	}

	size := s.Options.FontSize
	upperFace, err := glyph.NewFace(upper, size)
	if err != nil {
		return nil, &emboss.ConfigError{Field: "upper font", Err: err}
	}
	lowerFace, err := glyph.NewFace(lower, size)
	if err != nil {
		return nil, &emboss.ConfigError{Field: "lower font", Err: err}
	}

	entries := palette.Merge(palette.DefaultEntries(), s.Textures)
	return emboss.NewRenderer(s.Options,
		emboss.Band{Face: upperFace, Layers: s.Upper},
		emboss.Band{Face: lowerFace, Layers: s.Lower},
		entries)
}
