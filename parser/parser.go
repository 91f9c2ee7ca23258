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

// Package parser implements bounds checked reading of big-endian values
// from the contents of a single sfnt table.
package parser

import (
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/fonterror"
)

// Parser allows to read data from an sfnt table.
// All reads are restricted to the byte slice given to [New].
type Parser struct {
	tableName string
	data      []byte
	pos       int
}

// New allocates a new Parser for the given table data.
func New(tableName string, data []byte) *Parser {
	return &Parser{
		tableName: tableName,
		data:      data,
	}
}

// Size returns the length of the table data.
func (p *Parser) Size() int {
	return len(p.data)
}

// Pos returns the current reading position.
func (p *Parser) Pos() int {
	return p.pos
}

// Remaining returns the number of bytes between the current position and
// the end of the table.
func (p *Parser) Remaining() int {
	return len(p.data) - p.pos
}

// SeekPos changes the reading position.
// Seeking to the end of the table is allowed, seeking beyond is not.
func (p *Parser) SeekPos(pos int) error {
	if pos < 0 || pos > len(p.data) {
		return p.tooShort()
	}
	p.pos = pos
	return nil
}

// Discard skips the next n bytes of input.
func (p *Parser) Discard(n int) error {
	if n < 0 {
		panic("negative discard")
	}
	return p.SeekPos(p.pos + n)
}

// ReadBytes returns the next n bytes of the table.  The returned slice
// shares memory with the table data, its capacity is limited so that
// appending to it cannot modify the table.
func (p *Parser) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > len(p.data)-p.pos {
		return nil, p.tooShort()
	}
	res := p.data[p.pos : p.pos+n : p.pos+n]
	p.pos += n
	return res, nil
}

// ReadUint8 reads a single uint8 value from the current position.
func (p *Parser) ReadUint8() (uint8, error) {
	buf, err := p.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads a single uint16 value from the current position.
func (p *Parser) ReadUint16() (uint16, error) {
	buf, err := p.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// ReadInt16 reads a single int16 value from the current position.
func (p *Parser) ReadInt16() (int16, error) {
	val, err := p.ReadUint16()
	return int16(val), err
}

// ReadFUnit reads a single signed 16 bit value in font design units.
func (p *Parser) ReadFUnit() (funit.Int16, error) {
	val, err := p.ReadUint16()
	return funit.Int16(val), err
}

// ReadUint32 reads a single uint32 value from the current position.
func (p *Parser) ReadUint32() (uint32, error) {
	buf, err := p.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

// ReadInt32 reads a single int32 value from the current position.
func (p *Parser) ReadInt32() (int32, error) {
	val, err := p.ReadUint32()
	return int32(val), err
}

// ReadFixed reads a 16.16 fixed point number and converts it to float64.
func (p *Parser) ReadFixed() (float64, error) {
	val, err := p.ReadInt32()
	return float64(val) / 65536, err
}

func (p *Parser) tooShort() error {
	return fonterror.TooShort(p.tableName)
}
