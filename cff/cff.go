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

// Package cff reads the font name from a CFF font.
//
// Only the header and the Name INDEX are decoded.
//
// https://adobe-type-tools.github.io/font-tech-notes/pdfs/5176.CFF.pdf
package cff

import (
	"fmt"

	"seehuhn.de/go/fontinfo/fonterror"
	"seehuhn.de/go/fontinfo/parser"
)

// FontName returns the name of the font in the "CFF " table data.
// Font sets with more than one font are rejected.
func FontName(data []byte) (string, error) {
	p := parser.New("CFF ", data)

	// section 0: header
	x, err := p.ReadUint32()
	if err != nil {
		return "", err
	}
	major := x >> 24
	minor := (x >> 16) & 0xFF
	nameIndexOffs := int((x >> 8) & 0xFF)
	offSize := x & 0xFF // only used to exclude non-CFF files
	if major != 1 || nameIndexOffs < 4 || offSize < 1 || offSize > 4 {
		return "", fonterror.Invalid("CFF ", fmt.Sprintf("invalid header (version %d.%d)", major, minor))
	}

	// section 1: Name INDEX
	err = p.SeekPos(nameIndexOffs)
	if err != nil {
		return "", err
	}
	fontNames, err := readIndex(p)
	if err != nil {
		return "", err
	}
	if len(fontNames) != 1 {
		return "", fonterror.Invalid("CFF ", fmt.Sprintf("%d fonts in font set", len(fontNames)))
	}
	return string(fontNames[0]), nil
}

func readIndex(p *parser.Parser) ([][]byte, error) {
	count, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	offSize, err := p.ReadUint8()
	if err != nil {
		return nil, err
	}
	if offSize < 1 || offSize > 4 {
		return nil, fonterror.Invalid("CFF ", "invalid INDEX offset size")
	}

	offsets := make([]int, 0, int(count)+1)
	prevOffset := 1
	for i := 0; i <= int(count); i++ {
		blob, err := p.ReadBytes(int(offSize))
		if err != nil {
			return nil, err
		}

		var offs int
		for _, x := range blob {
			offs = offs<<8 + int(x)
		}
		if offs < prevOffset || offs-1 > p.Remaining() {
			return nil, fonterror.Invalid("CFF ", "invalid INDEX")
		}
		offsets = append(offsets, offs-1)
		prevOffset = offs
	}

	buf, err := p.ReadBytes(offsets[count])
	if err != nil {
		return nil, err
	}

	res := make([][]byte, count)
	for i := 0; i < int(count); i++ {
		res[i] = buf[offsets[i]:offsets[i+1]]
	}
	return res, nil
}
