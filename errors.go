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
	"fmt"
)

var (
	// ErrInvalidConfig is matched by all configuration errors, see
	// [ConfigError].
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyContent is returned when a render produces no visible
	// pixels, for example because both texts are blank.
	ErrEmptyContent = errors.New("no visible content")
)

// ConfigError reports an unusable option, layer stack, texture or style
// file entry.  Err gives the details, and may wrap an error of a lower
// level package, like gradient.ErrInvalidSpec.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("emboss: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes all configuration errors match [ErrInvalidConfig].
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func configError(field string, format string, args ...any) error {
	return &ConfigError{Field: field, Err: fmt.Errorf(format, args...)}
}
