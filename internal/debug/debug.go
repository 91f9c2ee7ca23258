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

// Package debug provides synthetic fonts for use in unit tests.
//
// A [Config] describes the values which end up in the font tables.
// [Config.Tables] encodes the tables and [Config.Build] assembles them
// into a complete sfnt file.
package debug

import (
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"seehuhn.de/go/postscript/funit"
)

// Config describes a synthetic font.
type Config struct {
	CFF bool // use a "CFF " table instead of "glyf"/"loca"

	// FontName is stored in the Name INDEX of the "CFF " table.
	FontName string

	UnitsPerEm uint16
	FontBBox   funit.Rect16
	MacStyle   uint16
	LocaFormat int16

	Ascent    funit.Int16
	Descent   funit.Int16
	LineGap   funit.Int16
	NumGlyphs uint16

	Names []NameRecord

	OS2  *OS2   // nil to omit the table
	Post *Post  // nil to omit the table
	fvar []byte // set by Variable

	// Glyphs gives the bounding boxes written to the "glyf" table.
	// Zero rectangles produce empty glyphs.  If the slice is shorter than
	// NumGlyphs, the remaining glyphs are empty.
	Glyphs []funit.Rect16

	// Omit lists tables which are left out of the font.
	Omit []string
}

// OS2 describes the contents of a synthetic "OS/2" table.
type OS2 struct {
	Version     uint16
	WeightClass uint16
	WidthClass  uint16
	Type        uint16
	Selection   uint16

	SubscriptXSize     funit.Int16
	SubscriptYSize     funit.Int16
	SubscriptXOffset   funit.Int16
	SubscriptYOffset   funit.Int16
	SuperscriptXSize   funit.Int16
	SuperscriptYSize   funit.Int16
	SuperscriptXOffset funit.Int16
	SuperscriptYOffset funit.Int16
	StrikeoutSize      funit.Int16
	StrikeoutPosition  funit.Int16

	Vendor string

	XHeight   funit.Int16
	CapHeight funit.Int16
}

// Post describes the contents of a synthetic "post" table.
type Post struct {
	ItalicAngle        float64
	UnderlinePosition  funit.Int16
	UnderlineThickness funit.Int16
	IsFixedPitch       bool
}

// NameRecord describes an entry of a synthetic "name" table.  The text is
// encoded as Mac Roman for the Macintosh platform and as UTF-16BE
// otherwise.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Text       string
}

// Windows returns a Windows Unicode BMP name record.
func Windows(languageID, nameID uint16, text string) NameRecord {
	return NameRecord{PlatformID: 3, EncodingID: 1, LanguageID: languageID, NameID: nameID, Text: text}
}

// Mac returns a Macintosh Roman name record.
func Mac(languageID, nameID uint16, text string) NameRecord {
	return NameRecord{PlatformID: 1, EncodingID: 0, LanguageID: languageID, NameID: nameID, Text: text}
}

// Default returns the configuration of a simple, complete TrueType font.
func Default() *Config {
	return &Config{
		FontName:   "Debug-Regular",
		UnitsPerEm: 1000,
		FontBBox:   funit.Rect16{LLx: -50, LLy: -250, URx: 950, URy: 900},
		Ascent:     800,
		Descent:    -200,
		LineGap:    100,
		NumGlyphs:  4,
		Names: []NameRecord{
			Windows(0x0409, 1, "Debug"),
			Windows(0x0409, 2, "Regular"),
			Windows(0x0409, 4, "Debug Regular"),
			Windows(0x0409, 6, "Debug-Regular"),
		},
		OS2: &OS2{
			Version:           4,
			WeightClass:       400,
			WidthClass:        5,
			Selection:         0x0040,
			Vendor:            "TEST",
			StrikeoutSize:     50,
			StrikeoutPosition: 300,
			XHeight:           500,
			CapHeight:         700,
		},
		Post: &Post{
			UnderlinePosition:  -100,
			UnderlineThickness: 50,
		},
		Glyphs: []funit.Rect16{
			{},
			{LLx: 10, LLy: 0, URx: 500, URy: 700},
			{LLx: -20, LLy: -200, URx: 400, URy: 500},
		},
	}
}

// Variable adds an "fvar" table to the font.
func (c *Config) Variable() *Config {
	// version 1.0, axesArrayOffset 16, no axes and no instances
	c.fvar = []byte{0, 1, 0, 0, 0, 16, 0, 2, 0, 0, 0, 20, 0, 0, 0, 4}
	return c
}

// Tables returns the encoded font tables.
func (c *Config) Tables() map[string][]byte {
	tables := map[string][]byte{
		"head": c.encodeHead(),
		"hhea": c.encodeHhea(),
		"maxp": c.encodeMaxp(),
		"name": EncodeNames(c.Names),
	}
	if c.OS2 != nil {
		tables["OS/2"] = c.OS2.encode()
	}
	if c.Post != nil {
		tables["post"] = c.Post.encode()
	}
	if c.fvar != nil {
		tables["fvar"] = c.fvar
	}
	if c.CFF {
		tables["CFF "] = c.encodeCFF()
	} else {
		tables["glyf"], tables["loca"] = c.encodeGlyf()
	}
	for _, name := range c.Omit {
		delete(tables, name)
	}
	return tables
}

func (c *Config) encodeHead() []byte {
	res := make([]byte, 54)
	binary.BigEndian.PutUint32(res[0:], 0x00010000)
	binary.BigEndian.PutUint32(res[4:], 0x00010000)
	binary.BigEndian.PutUint32(res[12:], 0x5F0F3CF5)
	binary.BigEndian.PutUint16(res[16:], 0x000B)
	binary.BigEndian.PutUint16(res[18:], c.UnitsPerEm)
	binary.BigEndian.PutUint16(res[36:], uint16(c.FontBBox.LLx))
	binary.BigEndian.PutUint16(res[38:], uint16(c.FontBBox.LLy))
	binary.BigEndian.PutUint16(res[40:], uint16(c.FontBBox.URx))
	binary.BigEndian.PutUint16(res[42:], uint16(c.FontBBox.URy))
	binary.BigEndian.PutUint16(res[44:], c.MacStyle)
	binary.BigEndian.PutUint16(res[46:], 8)
	binary.BigEndian.PutUint16(res[48:], 2)
	binary.BigEndian.PutUint16(res[50:], uint16(c.LocaFormat))
	return res
}

func (c *Config) encodeHhea() []byte {
	res := make([]byte, 36)
	binary.BigEndian.PutUint32(res[0:], 0x00010000)
	binary.BigEndian.PutUint16(res[4:], uint16(c.Ascent))
	binary.BigEndian.PutUint16(res[6:], uint16(c.Descent))
	binary.BigEndian.PutUint16(res[8:], uint16(c.LineGap))
	binary.BigEndian.PutUint16(res[18:], 1) // caretSlopeRise
	binary.BigEndian.PutUint16(res[34:], c.NumGlyphs)
	return res
}

func (c *Config) encodeMaxp() []byte {
	if c.CFF {
		return []byte{0, 0, 0x50, 0, byte(c.NumGlyphs >> 8), byte(c.NumGlyphs)}
	}
	res := make([]byte, 32)
	binary.BigEndian.PutUint32(res[0:], 0x00010000)
	binary.BigEndian.PutUint16(res[4:], c.NumGlyphs)
	return res
}

// encodeCFF returns a "CFF " table which has a header and a Name INDEX,
// but no font data.
func (c *Config) encodeCFF() []byte {
	res := []byte{1, 0, 4, 1}
	res = append(res, 0, 1, 1, 1, byte(1+len(c.FontName)))
	return append(res, c.FontName...)
}

func (c *Config) encodeGlyf() (glyf, loca []byte) {
	offsets := make([]uint32, 0, int(c.NumGlyphs)+1)
	for i := 0; i < int(c.NumGlyphs); i++ {
		offsets = append(offsets, uint32(len(glyf)))
		if i >= len(c.Glyphs) || c.Glyphs[i].IsZero() {
			continue
		}
		r := c.Glyphs[i]
		glyf = binary.BigEndian.AppendUint16(glyf, 1) // numberOfContours
		glyf = binary.BigEndian.AppendUint16(glyf, uint16(r.LLx))
		glyf = binary.BigEndian.AppendUint16(glyf, uint16(r.LLy))
		glyf = binary.BigEndian.AppendUint16(glyf, uint16(r.URx))
		glyf = binary.BigEndian.AppendUint16(glyf, uint16(r.URy))
		// endPtsOfContours, instructionLength, one on-curve point at (0, 0)
		glyf = append(glyf, 0, 0, 0, 0, 0x31)
		if len(glyf)%2 != 0 {
			glyf = append(glyf, 0)
		}
	}
	offsets = append(offsets, uint32(len(glyf)))
	if glyf == nil {
		glyf = []byte{}
	}

	for _, o := range offsets {
		if c.LocaFormat == 0 {
			loca = binary.BigEndian.AppendUint16(loca, uint16(o/2))
		} else {
			loca = binary.BigEndian.AppendUint32(loca, o)
		}
	}
	return glyf, loca
}

func (o *OS2) encode() []byte {
	var res []byte
	u16 := func(v uint16) { res = binary.BigEndian.AppendUint16(res, v) }
	i16 := func(v funit.Int16) { u16(uint16(v)) }

	u16(o.Version)
	i16(500) // xAvgCharWidth
	u16(o.WeightClass)
	u16(o.WidthClass)
	u16(o.Type)
	i16(o.SubscriptXSize)
	i16(o.SubscriptYSize)
	i16(o.SubscriptXOffset)
	i16(o.SubscriptYOffset)
	i16(o.SuperscriptXSize)
	i16(o.SuperscriptYSize)
	i16(o.SuperscriptXOffset)
	i16(o.SuperscriptYOffset)
	i16(o.StrikeoutSize)
	i16(o.StrikeoutPosition)
	u16(0) // sFamilyClass

	// panose, ulUnicodeRange1-4
	res = append(res, make([]byte, 10+16)...)
	vendor := []byte("    ")
	copy(vendor, o.Vendor)
	res = append(res, vendor...)
	u16(o.Selection)
	u16(0x0020) // usFirstCharIndex
	u16(0x007E) // usLastCharIndex
	i16(800)    // sTypoAscender
	i16(-200)   // sTypoDescender
	i16(100)    // sTypoLineGap
	u16(900)    // usWinAscent
	u16(250)    // usWinDescent
	if o.Version >= 1 {
		res = append(res, 0, 0, 0, 1, 0, 0, 0, 0) // ulCodePageRange1-2
	}
	if o.Version >= 2 {
		i16(o.XHeight)
		i16(o.CapHeight)
		u16(0)    // usDefaultChar
		u16(0x20) // usBreakChar
		u16(1)    // usMaxContext
	}
	if o.Version >= 5 {
		u16(0)      // usLowerOpticalPointSize
		u16(0xFFFF) // usUpperOpticalPointSize
	}
	return res
}

func (p *Post) encode() []byte {
	res := make([]byte, 32)
	binary.BigEndian.PutUint32(res[0:], 0x00030000)
	binary.BigEndian.PutUint32(res[4:], uint32(int32(p.ItalicAngle*65536)))
	binary.BigEndian.PutUint16(res[8:], uint16(p.UnderlinePosition))
	binary.BigEndian.PutUint16(res[10:], uint16(p.UnderlineThickness))
	if p.IsFixedPitch {
		binary.BigEndian.PutUint32(res[12:], 1)
	}
	return res
}

// EncodeNames returns a version 0 "name" table containing the given
// records, in the given order.
func EncodeNames(records []NameRecord) []byte {
	var storage []byte
	res := make([]byte, 6+12*len(records))
	binary.BigEndian.PutUint16(res[2:], uint16(len(records)))
	binary.BigEndian.PutUint16(res[4:], uint16(len(res)))
	for i, rec := range records {
		var data []byte
		if rec.PlatformID == 1 {
			data, _ = charmap.Macintosh.NewEncoder().Bytes([]byte(rec.Text))
		} else {
			data, _ = utf16BE.NewEncoder().Bytes([]byte(rec.Text))
		}

		pos := 6 + 12*i
		binary.BigEndian.PutUint16(res[pos:], rec.PlatformID)
		binary.BigEndian.PutUint16(res[pos+2:], rec.EncodingID)
		binary.BigEndian.PutUint16(res[pos+4:], rec.LanguageID)
		binary.BigEndian.PutUint16(res[pos+6:], rec.NameID)
		binary.BigEndian.PutUint16(res[pos+8:], uint16(len(data)))
		binary.BigEndian.PutUint16(res[pos+10:], uint16(len(storage)))
		storage = append(storage, data...)
	}
	return append(res, storage...)
}

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
