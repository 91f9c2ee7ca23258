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

// Package cmap reads the directory of the "cmap" table.
//
// Only the encoding records and the format of each subtable are decoded.
// The character to glyph mappings themselves are not read.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
package cmap

import (
	"fmt"

	"seehuhn.de/go/fontinfo/fonterror"
	"seehuhn.de/go/fontinfo/parser"
)

// Encoding describes one subtable of the "cmap" table.
type Encoding struct {
	PlatformID uint16
	EncodingID uint16
	Format     uint16
	Language   uint16 // only meaningful for the Macintosh platform
}

func (e Encoding) String() string {
	return fmt.Sprintf("%d/%d format %d", e.PlatformID, e.EncodingID, e.Format)
}

// IsUnicode returns true if the subtable maps Unicode code points.
func (e Encoding) IsUnicode() bool {
	switch e.PlatformID {
	case 0:
		return true
	case 3:
		return e.EncodingID == 1 || e.EncodingID == 10
	default:
		return false
	}
}

// Decode reads the encoding records of a "cmap" table, in the order in
// which they appear in the table.
func Decode(data []byte) ([]Encoding, error) {
	p := parser.New("cmap", data)
	version, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, fonterror.Invalid("cmap", fmt.Sprintf("unknown version %d", version))
	}
	numTables, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}

	res := make([]Encoding, 0, numTables)
	for i := 0; i < int(numTables); i++ {
		buf, err := p.ReadBytes(8)
		if err != nil {
			return nil, err
		}
		platformID := uint16(buf[0])<<8 | uint16(buf[1])
		encodingID := uint16(buf[2])<<8 | uint16(buf[3])
		offset := int(buf[4])<<24 | int(buf[5])<<16 | int(buf[6])<<8 | int(buf[7])

		format, language, err := subtableHeader(data, offset)
		if err != nil {
			return nil, err
		}
		res = append(res, Encoding{
			PlatformID: platformID,
			EncodingID: encodingID,
			Format:     format,
			Language:   language,
		})
	}
	return res, nil
}

// subtableHeader reads the format and the language field of the subtable
// at the given offset.
func subtableHeader(data []byte, offset int) (format, language uint16, err error) {
	if offset < 0 || offset+2 > len(data) {
		return 0, 0, fonterror.Invalid("cmap", fmt.Sprintf("subtable offset %d out of range", offset))
	}
	format = uint16(data[offset])<<8 | uint16(data[offset+1])

	// Formats 0 to 6 have a 16 bit language field at offset 4.  The later
	// formats have a 32 bit field at offset 8, of which we keep the low
	// half.  Format 14 has no language field.
	var pos int
	switch format {
	case 0, 2, 4, 6:
		pos = offset + 4
	case 8, 10, 12, 13:
		pos = offset + 10
	case 14:
		return format, 0, nil
	default:
		return 0, 0, fonterror.Invalid("cmap", fmt.Sprintf("unknown subtable format %d", format))
	}
	if pos+2 > len(data) {
		return 0, 0, fonterror.TooShort("cmap")
	}
	language = uint16(data[pos])<<8 | uint16(data[pos+1])
	return format, language, nil
}
