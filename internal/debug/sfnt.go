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

package debug

import (
	"encoding/binary"
	"math/bits"
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/fontinfo/header"
)

// Face is one font face of an sfnt file.  Tables where the data is nil
// are omitted.
type Face struct {
	ScalerType uint32
	Tables     map[string][]byte
}

// Face returns the font face described by c.
func (c *Config) Face() Face {
	scalerType := uint32(header.ScalerTypeTrueType)
	if c.CFF {
		scalerType = header.ScalerTypeCFF
	}
	return Face{ScalerType: scalerType, Tables: c.Tables()}
}

// Build returns the binary representation of the font.
func (c *Config) Build() []byte {
	return Assemble(c.Face())
}

// Assemble returns a single-face sfnt file.  The table data is not
// modified.
func Assemble(face Face) []byte {
	return appendFace(nil, face)
}

// Collection returns a "ttcf" font collection containing the given faces.
// Each face stores its own copy of the tables.
func Collection(faces ...Face) []byte {
	hdrLen := 12 + 4*len(faces)
	buf := make([]byte, hdrLen)
	copy(buf, "ttcf")
	binary.BigEndian.PutUint16(buf[4:], 1)
	binary.BigEndian.PutUint32(buf[8:], uint32(len(faces)))
	for i, face := range faces {
		binary.BigEndian.PutUint32(buf[12+4*i:], uint32(len(buf)))
		buf = appendFace(buf, face)
	}
	return buf
}

// appendFace appends the table directory and the table data of one face
// to buf.  Table offsets are relative to the start of buf.
func appendFace(buf []byte, face Face) []byte {
	var tags []string
	for tag, data := range face.Tables {
		if data != nil && len(tag) == 4 {
			tags = append(tags, tag)
		}
	}
	slices.SortFunc(tags, func(a, b string) int {
		if pa, pb := tableOrder[a], tableOrder[b]; pa != pb {
			return pb - pa
		}
		return strings.Compare(a, b)
	})
	numTables := len(tags)

	sel := 0
	if numTables > 0 {
		sel = bits.Len(uint(numTables)) - 1
	}
	start := len(buf)
	buf = binary.BigEndian.AppendUint32(buf, face.ScalerType)
	buf = binary.BigEndian.AppendUint16(buf, uint16(numTables))
	buf = binary.BigEndian.AppendUint16(buf, uint16(16<<sel))
	buf = binary.BigEndian.AppendUint16(buf, uint16(sel))
	buf = binary.BigEndian.AppendUint16(buf, uint16(16 * (numTables - 1<<sel)))
	dirPos := len(buf)
	buf = append(buf, make([]byte, 16*numTables)...)

	type record struct {
		tag              string
		checksum, offset uint32
		length           uint32
	}
	records := make([]record, numTables)
	headPos := -1
	for i, tag := range tags {
		for len(buf)%4 != 0 {
			buf = append(buf, 0)
		}
		pos := len(buf)
		buf = append(buf, face.Tables[tag]...)
		body := buf[pos:]
		if tag == "head" && len(body) >= 12 {
			headPos = pos
			binary.BigEndian.PutUint32(body[8:], 0)
		}
		records[i] = record{tag, header.Checksum(body), uint32(pos), uint32(len(body))}
	}
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}

	slices.SortFunc(records, func(a, b record) int {
		return strings.Compare(a.tag, b.tag)
	})
	total := uint32(0)
	for i, rec := range records {
		p := buf[dirPos+16*i:]
		copy(p, rec.tag)
		binary.BigEndian.PutUint32(p[4:], rec.checksum)
		binary.BigEndian.PutUint32(p[8:], rec.offset)
		binary.BigEndian.PutUint32(p[12:], rec.length)
		total += rec.checksum
	}
	total += header.Checksum(buf[start : dirPos+16*numTables])
	if headPos >= 0 {
		binary.BigEndian.PutUint32(buf[headPos+8:], 0xB1B0AFBA-total)
	}
	return buf
}

// https://docs.microsoft.com/en-us/typography/opentype/spec/recom#optimized-table-ordering
var tableOrder = map[string]int{
	"head": 95,
	"hhea": 90,
	"maxp": 85,
	"OS/2": 80,
	"hmtx": 75,
	"cmap": 55,
	"loca": 35,
	"glyf": 30,
	"name": 20,
	"post": 15,
}
