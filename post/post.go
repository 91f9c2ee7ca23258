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

// Package post reads the header of the "post" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
package post

import (
	"bytes"
	"encoding/binary"
	"io"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/fonterror"
)

// Info contains information from the "post" table.
// The fields are present in all table versions.
type Info struct {
	Version            uint32
	ItalicAngle        float64     // Italic angle in degrees
	UnderlinePosition  funit.Int16 // Underline position (negative)
	UnderlineThickness funit.Int16 // Underline thickness
	IsFixedPitch       bool
}

// Read decodes the 32-byte header of the "post" table.
// Glyph names, which follow the header in some table versions, are not
// decoded.
func Read(data []byte) (*Info, error) {
	post := &postEnc{}
	err := binary.Read(bytes.NewReader(data), binary.BigEndian, post)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, fonterror.TooShort("post")
	} else if err != nil {
		return nil, err
	}

	info := &Info{
		Version:            post.Version,
		ItalicAngle:        float64(post.ItalicAngle) / 65536,
		UnderlinePosition:  post.UnderlinePosition,
		UnderlineThickness: post.UnderlineThickness,
		IsFixedPitch:       post.IsFixedPitch != 0,
	}
	return info, nil
}

type postEnc struct {
	Version            uint32
	ItalicAngle        int32
	UnderlinePosition  funit.Int16
	UnderlineThickness funit.Int16
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32
}
