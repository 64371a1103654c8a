// FoundryTools - command line tools for editing OpenType fonts
// Copyright (C) 2026  SolidTux
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

// Package overlaps removes self-intersections from glyph outlines.
//
// Glyph outlines are converted to boolean paths, settled with the
// nonzero winding rule, and written back only when the settled outline
// differs from the original.  Composite glyphs are only decomposed when
// their components actually overlap each other.  The boolean path
// algebra is delegated to github.com/tdewolff/canvas.
package overlaps

import (
	"errors"

	"seehuhn.de/go/sfnt/glyph"

	"github.com/SolidTux/foundrytools/fontfile"
)

// Options control the overlap removal process.
type Options struct {
	// KeepHinting leaves glyph instructions in place.  By default all
	// hinting is removed, since rewritten outlines invalidate the
	// original instructions anyway.
	KeepHinting bool

	// IgnoreErrors downgrades per-glyph failures to warnings and
	// continues with the remaining glyphs.
	IgnoreErrors bool

	// Warn, if non-nil, receives warning messages.
	Warn func(msg string)
}

func (opts *Options) warn(msg string) {
	if opts.Warn != nil {
		opts.Warn(msg)
	}
}

// Remove removes overlaps from all glyphs of the font.  It returns the
// IDs of the glyphs whose outlines changed.
func Remove(f *fontfile.Font, opts Options) ([]glyph.ID, error) {
	switch {
	case f.HasTable("glyf"):
		return RemoveTrueType(f, opts)
	case f.HasTable("CFF "):
		return RemoveCFF(f, opts)
	}
	return nil, errors.New("font has no glyph outlines")
}
