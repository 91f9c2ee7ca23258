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

// Package head reads the "head" table of sfnt fonts.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
package head

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/fonterror"
)

// Limits for the unitsPerEm field.
const (
	MinUnitsPerEm = 16
	MaxUnitsPerEm = 16384
)

// Info represents the information in the "head" table of an sfnt.
type Info struct {
	FontRevision  Version // set by font manufacturer
	HasYBaseAt0   bool    // baseline for font at y=0
	HasXBaseAt0   bool    // left sidebearing point at x=0 (only for TrueType)
	IsNonlinear   bool    // outline/advance width may change nonlinearly
	UnitsPerEm    uint16  // font design units per em square
	Created       time.Time
	Modified      time.Time
	FontBBox      funit.Rect16
	IsBold        bool
	IsItalic      bool
	HasUnderline  bool
	IsOutline     bool
	HasShadow     bool
	IsCondensed   bool
	IsExtended    bool
	LowestRecPPEM uint16 // smallest readable size in pixels

	// LocaFormat is the indexToLocFormat field: 0 for short and 1 for
	// long offsets in the "loca" table.
	LocaFormat int16
}

// Read decodes the binary representation of the head table.
func Read(data []byte) (*Info, error) {
	enc := &binaryHead{}
	err := binary.Read(bytes.NewReader(data), binary.BigEndian, enc)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fonterror.TooShort("head")
	} else if err != nil {
		return nil, err
	}

	if enc.UnitsPerEm < MinUnitsPerEm || enc.UnitsPerEm > MaxUnitsPerEm {
		return nil, &fonterror.Error{
			Kind:   fonterror.InvalidUnitsPerEm,
			Table:  "head",
			Reason: strconv.Itoa(int(enc.UnitsPerEm)),
		}
	}

	info := &Info{}

	info.FontRevision = Version(enc.FontRevision)

	flags := enc.Flags
	info.HasYBaseAt0 = flags&(1<<0) != 0
	info.HasXBaseAt0 = flags&(1<<1) != 0
	info.IsNonlinear = flags&(1<<2) != 0 || flags&(1<<4) != 0

	info.UnitsPerEm = enc.UnitsPerEm

	info.Created = decodeTime(enc.Created)
	info.Modified = decodeTime(enc.Modified)

	info.FontBBox = funit.Rect16{
		LLx: enc.XMin,
		LLy: enc.YMin,
		URx: enc.XMax,
		URy: enc.YMax,
	}

	info.IsBold = enc.MacStyle&(1<<0) != 0
	info.IsItalic = enc.MacStyle&(1<<1) != 0
	info.HasUnderline = enc.MacStyle&(1<<2) != 0
	info.IsOutline = enc.MacStyle&(1<<3) != 0
	info.HasShadow = enc.MacStyle&(1<<4) != 0
	info.IsCondensed = enc.MacStyle&(1<<5) != 0
	info.IsExtended = enc.MacStyle&(1<<6) != 0

	info.LowestRecPPEM = enc.LowestRecPPEM
	info.LocaFormat = enc.IndexToLocFormat

	return info, nil
}

type binaryHead struct {
	Version            uint32
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64

	XMin funit.Int16
	YMin funit.Int16
	XMax funit.Int16
	YMax funit.Int16

	MacStyle uint16

	LowestRecPPEM     uint16
	FontDirectionHint int16

	IndexToLocFormat int16
	GlyphDataFormat  int16
}

// Version represents the font revision in 16.16 fixed point format.
type Version uint32

func (v Version) String() string {
	return fmt.Sprintf("%.03f", float64(v)/65536)
}
