// seehuhn.de/go/fontinfo - read metadata from TrueType and OpenType fonts
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

// Package maxp reads "maxp" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
package maxp

import (
	"fmt"

	"seehuhn.de/go/fontinfo/fonterror"
	"seehuhn.de/go/fontinfo/parser"
)

// The two versions of the "maxp" table.
const (
	Version05 = 0x00005000 // CFF outlines
	Version10 = 0x00010000 // TrueType outlines
)

// Info contains information from the "maxp" table.
type Info struct {
	Version uint32

	// NumGlyphs is number of glyphs in the font, in the range 1, ..., 65535.
	NumGlyphs int
}

// Read reads the "maxp" table.
// Only the fields common to both table versions are decoded.
func Read(data []byte) (*Info, error) {
	p := parser.New("maxp", data)
	version, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	if version != Version05 && version != Version10 {
		return nil, fonterror.Invalid("maxp", fmt.Sprintf("unknown version 0x%08x", version))
	}

	numGlyphs, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	if numGlyphs == 0 {
		return nil, fonterror.Invalid("maxp", "numGlyphs is zero")
	}

	info := &Info{
		Version:   version,
		NumGlyphs: int(numGlyphs),
	}
	return info, nil
}
