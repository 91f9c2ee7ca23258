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

package glyf

import (
	"fmt"

	"seehuhn.de/go/fontinfo/fonterror"
)

// decodeLoca returns the glyph positions within the "glyf" table.
// Glyph i occupies the bytes offs[i] to offs[i+1].
func decodeLoca(glyfData, locaData []byte, locaFormat int16) ([]int, error) {
	var offs []int
	switch locaFormat {
	case 0:
		n := len(locaData)
		if n < 4 || n%2 != 0 {
			return nil, fonterror.Invalid("loca", "invalid table length")
		}
		offs = make([]int, n/2)
		prev := 0
		for i := range offs {
			x := int(locaData[2*i])<<8 + int(locaData[2*i+1])
			pos := 2 * x
			if pos < prev || pos > len(glyfData) {
				return nil, fonterror.Invalid("loca", fmt.Sprintf("invalid offset %d", pos))
			}
			offs[i] = pos
			prev = pos
		}
	case 1:
		n := len(locaData)
		if n < 8 || n%4 != 0 {
			return nil, fonterror.Invalid("loca", "invalid table length")
		}
		offs = make([]int, n/4)
		prev := 0
		for i := range offs {
			pos := int(locaData[4*i])<<24 + int(locaData[4*i+1])<<16 +
				int(locaData[4*i+2])<<8 + int(locaData[4*i+3])
			if pos < prev || pos > len(glyfData) {
				return nil, fonterror.Invalid("loca", fmt.Sprintf("invalid offset %d", pos))
			}
			offs[i] = pos
			prev = pos
		}
	default:
		return nil, fonterror.Invalid("loca", fmt.Sprintf("unknown format %d", locaFormat))
	}
	return offs, nil
}
