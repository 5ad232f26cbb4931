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
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	rt "github.com/arnodel/golua/runtime"

	"seehuhn.de/go/emboss"
	"seehuhn.de/go/emboss/gradient"
	"seehuhn.de/go/emboss/layer"
	"seehuhn.de/go/emboss/palette"
)

func fieldError(field, format string, args ...any) error {
	return &emboss.ConfigError{Field: field, Err: fmt.Errorf(format, args...)}
}

func (s *Style) readConfig(root *rt.Table, dir string) error {
	val := root.Get(rt.StringValue("config"))
	if val == rt.NilValue {
		return nil
	}
	table, ok := val.TryTable()
	if !ok {
		return fieldError("emboss.config", "not a table")
	}

	o := &s.Options
	for _, f := range []struct {
		key string
		dst *int
	}{
		{"width", &o.Width},
		{"height", &o.Height},
		{"left_margin", &o.LeftMargin},
		{"subset", &o.Subset},
	} {
		if err := getInt(table, "emboss.config", f.key, f.dst); err != nil {
			return err
		}
	}
	if err := getFloat(table, "emboss.config", "font_size", &o.FontSize); err != nil {
		return err
	}
	if err := getBool(table, "emboss.config", "opaque", &o.Opaque); err != nil {
		return err
	}

	var str string
	if ok, err := getString(table, "emboss.config", "background", &str); err != nil {
		return err
	} else if ok {
		c, err := parseColor(str)
		if err != nil {
			return &emboss.ConfigError{Field: "emboss.config.background", Err: err}
		}
		o.Background = c
	}
	if ok, err := getString(table, "emboss.config", "rounding", &str); err != nil {
		return err
	} else if ok {
		switch str {
		case "boundaries":
			o.Rounding = gradient.RoundBoundaries
		case "spans":
			o.Rounding = gradient.RoundSpans
		default:
			return fieldError("emboss.config.rounding", "unknown mode %q", str)
		}
	}

	for _, f := range []struct {
		key string
		dst *string
	}{
		{"upper_font", &s.UpperFont},
		{"lower_font", &s.LowerFont},
	} {
		if ok, err := getString(table, "emboss.config", f.key, f.dst); err != nil {
			return err
		} else if ok && dir != "" && !filepath.IsAbs(*f.dst) {
			*f.dst = filepath.Join(dir, *f.dst)
		}
	}

	if err := o.Validate(); err != nil {
		var cerr *emboss.ConfigError
		if errors.As(err, &cerr) {
			key := strings.ReplaceAll(cerr.Field, " ", "_")
			return &emboss.ConfigError{Field: "emboss.config." + key, Err: cerr.Err}
		}
		return err
	}
	return nil
}

func readStack(field string, val rt.Value) (layer.Stack, error) {
	table, ok := val.TryTable()
	if !ok {
		return layer.Stack{}, fieldError(field, "not a list")
	}

	var specs []layer.Spec
	for i := int64(1); ; i++ {
		v := table.Get(rt.IntValue(i))
		if v == rt.NilValue {
			break
		}
		name := fmt.Sprintf("%s[%d]", field, i)
		t, ok := v.TryTable()
		if !ok {
			return layer.Stack{}, fieldError(name, "not a table")
		}

		var spec layer.Spec
		if err := getInt(t, name, "dx", &spec.Offset.X); err != nil {
			return layer.Stack{}, err
		}
		if err := getInt(t, name, "dy", &spec.Offset.Y); err != nil {
			return layer.Stack{}, err
		}
		if err := getInt(t, name, "stroke", &spec.Stroke); err != nil {
			return layer.Stack{}, err
		}
		if _, err := getString(t, name, "texture", &spec.Texture); err != nil {
			return layer.Stack{}, err
		}
		specs = append(specs, spec)
	}

	stack, err := layer.NewStack(specs...)
	if err != nil {
		return layer.Stack{}, &emboss.ConfigError{Field: field, Err: err}
	}
	return stack, nil
}

// readEntry decodes a texture, given either as {stops = {{pos, rgb}, ...}}
// or as {flat = rgb}.
func readEntry(field string, val rt.Value) (palette.Entry, error) {
	var e palette.Entry
	table, ok := val.TryTable()
	if !ok {
		return e, fieldError(field, "not a table")
	}

	stopsVal := table.Get(rt.StringValue("stops"))
	flatVal := table.Get(rt.StringValue("flat"))
	switch {
	case stopsVal != rt.NilValue && flatVal != rt.NilValue:
		return e, fieldError(field, "both stops and flat are set")
	case stopsVal != rt.NilValue:
		stops, ok := stopsVal.TryTable()
		if !ok {
			return e, fieldError(field+".stops", "not a list")
		}
		for i := int64(1); ; i++ {
			v := stops.Get(rt.IntValue(i))
			if v == rt.NilValue {
				break
			}
			name := fmt.Sprintf("%s.stops[%d]", field, i)
			stop, err := readStop(name, v)
			if err != nil {
				return e, err
			}
			e.Stops = append(e.Stops, stop)
		}
		if err := e.Stops.Validate(); err != nil {
			return e, &emboss.ConfigError{Field: field + ".stops", Err: err}
		}
	case flatVal != rt.NilValue:
		c, err := readRGB(field+".flat", flatVal)
		if err != nil {
			return e, err
		}
		e.Flat = c
	default:
		return e, fieldError(field, "neither stops nor flat is set")
	}
	return e, nil
}

func readStop(field string, val rt.Value) (gradient.Stop, error) {
	var stop gradient.Stop
	t, ok := val.TryTable()
	if !ok {
		return stop, fieldError(field, "not a {pos, color} pair")
	}
	pos, ok := toFloat(t.Get(rt.IntValue(1)))
	if !ok {
		return stop, fieldError(field, "position is not a number")
	}
	c, err := readRGB(field, t.Get(rt.IntValue(2)))
	if err != nil {
		return stop, err
	}
	stop.Pos = pos
	stop.Color = c
	return stop, nil
}

// readRGB decodes a color given as a list {r, g, b} of integers in the
// range 0 to 255.
func readRGB(field string, val rt.Value) (gradient.RGB, error) {
	var c gradient.RGB
	t, ok := val.TryTable()
	if !ok {
		return c, fieldError(field, "color is not a {r, g, b} list")
	}
	var v [3]uint8
	for i := range v {
		x, ok := toInt(t.Get(rt.IntValue(int64(i + 1))))
		if !ok || x < 0 || x > 255 {
			return c, fieldError(field, "color component %d is not an integer in [0,255]", i+1)
		}
		v[i] = uint8(x)
	}
	if t.Get(rt.IntValue(4)) != rt.NilValue {
		return c, fieldError(field, "color has more than 3 components")
	}
	return gradient.RGB{R: v[0], G: v[1], B: v[2]}, nil
}

// parseColor decodes an opaque color written as "#rrggbb".
func parseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%q is not of the form #rrggbb", s)
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q is not of the form #rrggbb", s)
	}
	return color.RGBA{R: uint8(x >> 16), G: uint8(x >> 8), B: uint8(x), A: 255}, nil
}

func getInt(table *rt.Table, field, key string, dst *int) error {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}
	x, ok := toInt(val)
	if !ok {
		return fieldError(field+"."+key, "not an integer")
	}
	*dst = x
	return nil
}

func getFloat(table *rt.Table, field, key string, dst *float64) error {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}
	x, ok := toFloat(val)
	if !ok {
		return fieldError(field+"."+key, "not a number")
	}
	*dst = x
	return nil
}

func getBool(table *rt.Table, field, key string, dst *bool) error {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}
	b, ok := val.TryBool()
	if !ok {
		return fieldError(field+"."+key, "not a boolean")
	}
	*dst = b
	return nil
}

// getString reports whether the key was set.
func getString(table *rt.Table, field, key string, dst *string) (bool, error) {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return false, nil
	}
	s, ok := val.TryString()
	if !ok {
		return false, fieldError(field+"."+key, "not a string")
	}
	*dst = s
	return true, nil
}

// toInt accepts Lua integers and floats with an integral value.
func toInt(val rt.Value) (int, bool) {
	if n, ok := val.TryInt(); ok {
		return int(n), true
	}
	if f, ok := val.TryFloat(); ok {
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

func toFloat(val rt.Value) (float64, bool) {
	if f, ok := val.TryFloat(); ok {
		return f, true
	}
	if n, ok := val.TryInt(); ok {
		return float64(n), true
	}
	return 0, false
}
