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

// Package glyf computes font-wide bounding boxes from the "glyf" and
// "loca" tables of TrueType fonts.
//
// Only the glyph headers are read, glyph outlines are not decoded.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
package glyf

import (
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/fonterror"
)

// BBox returns the union of the bounding boxes of the first numGlyphs
// glyphs.  Glyphs without outlines are ignored.  If all glyphs are empty,
// the zero rectangle is returned.
func BBox(glyfData, locaData []byte, locaFormat int16, numGlyphs int) (funit.Rect16, error) {
	var bbox funit.Rect16

	offs, err := decodeLoca(glyfData, locaData, locaFormat)
	if err != nil {
		return bbox, err
	}
	if n := len(offs) - 1; n < numGlyphs {
		numGlyphs = n
	}

	first := true
	for i := 0; i < numGlyphs; i++ {
		data := glyfData[offs[i]:offs[i+1]]
		if len(data) == 0 {
			continue
		}
		ext, err := decodeGlyphBBox(data)
		if err != nil {
			return funit.Rect16{}, err
		}
		if ext.IsZero() {
			continue
		}

		if first || ext.LLx < bbox.LLx {
			bbox.LLx = ext.LLx
		}
		if first || ext.LLy < bbox.LLy {
			bbox.LLy = ext.LLy
		}
		if first || ext.URx > bbox.URx {
			bbox.URx = ext.URx
		}
		if first || ext.URy > bbox.URy {
			bbox.URy = ext.URy
		}
		first = false
	}
	return bbox, nil
}

// decodeGlyphBBox reads the bounding box from the glyph header.
func decodeGlyphBBox(data []byte) (funit.Rect16, error) {
	if len(data) < 10 {
		return funit.Rect16{}, &fonterror.Error{
			Kind:   fonterror.TableTooShort,
			Table:  "glyf",
			Reason: "incomplete glyph header",
		}
	}
	ext := funit.Rect16{
		LLx: funit.Int16(data[2])<<8 | funit.Int16(data[3]),
		LLy: funit.Int16(data[4])<<8 | funit.Int16(data[5]),
		URx: funit.Int16(data[6])<<8 | funit.Int16(data[7]),
		URy: funit.Int16(data[8])<<8 | funit.Int16(data[9]),
	}
	return ext, nil
}
