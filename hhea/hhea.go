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

// Package hhea reads the "hhea" table of sfnt fonts.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
package hhea

import (
	"math"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/parser"
)

// Info contains information from the "hhea" table.
type Info struct {
	Ascent  funit.Int16
	Descent funit.Int16 // negative
	LineGap funit.Int16

	AdvanceWidthMax     uint16
	MinLeftSideBearing  funit.Int16
	MinRightSideBearing funit.Int16
	XMaxExtent          funit.Int16

	CaretAngle  float64 // in radians, 0 for vertical
	CaretOffset funit.Int16

	NumOfLongHorMetrics uint16
}

// Read decodes the "hhea" table.
func Read(data []byte) (*Info, error) {
	p := parser.New("hhea", data)

	// majorVersion, minorVersion
	err := p.Discard(4)
	if err != nil {
		return nil, err
	}

	var fields [10]funit.Int16
	for i := range fields {
		fields[i], err = p.ReadFUnit()
		if err != nil {
			return nil, err
		}
	}

	// reserved, metricDataFormat
	err = p.Discard(10)
	if err != nil {
		return nil, err
	}
	numLong, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}

	info := &Info{
		Ascent:              fields[0],
		Descent:             fields[1],
		LineGap:             fields[2],
		AdvanceWidthMax:     uint16(fields[3]),
		MinLeftSideBearing:  fields[4],
		MinRightSideBearing: fields[5],
		XMaxExtent:          fields[6],
		CaretAngle:          toAngle(int16(fields[7]), int16(fields[8])),
		CaretOffset:         fields[9],
		NumOfLongHorMetrics: numLong,
	}
	return info, nil
}

// toAngle converts the caret slope to an angle in radians, measured
// clockwise from the vertical.
func toAngle(rise, run int16) float64 {
	if run == 0 {
		return 0
	}
	return math.Atan2(float64(run), float64(rise))
}
